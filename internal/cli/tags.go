package cli

import (
	"fmt"
	"strings"

	"github.com/aeshirey/postkit/internal/config"
	"github.com/aeshirey/postkit/internal/post"
	"github.com/aeshirey/postkit/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags [title]",
	Short: "Show known tags or test detection against a title",
	Long: `Without an argument, print the configured known-tag list in detection order.
With a title argument, print the tags that auto-detection would pick for it.

Examples:
  postkit tags
  postkit tags "My Rust Project"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if len(cfg.KnownTags) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No known tags configured.")
				return nil
			}
			for _, tag := range cfg.KnownTags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		}

		title := strings.TrimSpace(args[0])
		matched := post.DetectTags(title, cfg.KnownTags)
		if len(matched) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Faint("no tags matched; `postkit new` would prompt for manual tags"))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(matched, ", "))
		return nil
	},
}
