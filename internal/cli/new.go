package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/aeshirey/postkit/internal/config"
	"github.com/aeshirey/postkit/internal/interactive"
	"github.com/aeshirey/postkit/internal/post"
	"github.com/aeshirey/postkit/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newTags string
	newYes  bool
)

func init() {
	newCmd.Flags().StringVar(&newTags, "tags", "", "Comma-separated tags, overriding auto-detection")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Scaffold a new post",
	Long: `Scaffold a new post file in the posts directory.

With no argument, the title is read interactively. The filename is derived
from today's date and a slugified title; tags are auto-detected from the
title against the configured known-tag list, prompting for manual tags when
nothing matches. The file is written only after confirmation.

Examples:
  postkit new
  postkit new "My Rust Project"
  postkit new "Release notes" --tags release,meta --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// One sample for the whole run: filename date and front-matter date must
	// agree even when execution spans a second boundary.
	now := time.Now()

	prompter := interactive.New(cmd.InOrStdin(), cmd.OutOrStdout())

	var title string
	if len(args) == 1 {
		title = strings.TrimSpace(args[0])
	} else {
		title, err = prompter.Line("New post name: ")
		if err != nil {
			return err
		}
	}

	req := post.NewRequest(title, now, cfg.PostsDir)

	resolve := func() ([]string, error) {
		return resolveTags(cmd, prompter, cfg, title)
	}

	if cfg.TagOrder == config.OrderBeforeConfirm {
		if req.Tags, err = resolve(); err != nil {
			return err
		}
	}

	if !newYes {
		ok, err := prompter.Confirm(fmt.Sprintf("Create post %q? [y/N] ", req.Filename))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelling")
			return ErrCancelled
		}
	}

	if cfg.TagOrder == config.OrderAfterConfirm {
		if req.Tags, err = resolve(); err != nil {
			return err
		}
	}

	data := scaffold.Data{
		Title:    req.Title,
		Date:     post.DateString(req.Taken, cfg.UTCOffset),
		Category: cfg.Category,
		Tags:     strings.Join(req.Tags, ", "),
	}
	if err := scaffold.Write(req.Filename, data); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Created file")
	return nil
}

// resolveTags applies, in order: the --tags override, auto-detection against
// the known-tag list, and the manual fallback prompt (when enabled).
func resolveTags(cmd *cobra.Command, prompter *interactive.Prompter, cfg *config.Settings, title string) ([]string, error) {
	if cmd.Flags().Changed("tags") {
		return post.ParseTagList(newTags), nil
	}

	tags := post.DetectTags(title, cfg.KnownTags)
	if len(tags) > 0 || !cfg.TagFallbackPrompt {
		return tags, nil
	}

	manual, err := prompter.Line("No tags found. Enter tags separated by a comma: ")
	if err != nil {
		return nil, err
	}
	return post.ParseTagList(manual), nil
}
