package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aeshirey/postkit/internal/config"
	"github.com/aeshirey/postkit/internal/post"
	"github.com/aeshirey/postkit/internal/ui"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing posts",
	Long:  `List the posts in the posts directory, newest first, with their front-matter metadata.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one post for display.
type listEntry struct {
	File  string   `json:"file"`
	Date  string   `json:"date"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	entries, err := collectPosts(cmd, cfg.PostsDir)
	if err != nil {
		return err
	}
	if entries == nil {
		return nil // nothing to list; message already printed
	}

	if listJSON {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling posts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tTITLE\tTAGS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Date, e.Title, strings.Join(e.Tags, ", "))
	}
	return w.Flush()
}

// collectPosts reads the posts directory and parses each markdown file's
// front matter. Files without a parseable header are reported as warnings
// rather than aborting the listing.
func collectPosts(cmd *cobra.Command, postsDir string) ([]listEntry, error) {
	dirEntries, err := os.ReadDir(postsDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No posts yet.")
			return nil, nil
		}
		return nil, fmt.Errorf("reading posts directory: %w", err)
	}

	var entries []listEntry
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != ".md" {
			continue
		}

		path := filepath.Join(postsDir, de.Name())
		fm, err := post.ParseFrontMatterFile(path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn(fmt.Sprintf("skipping %s: %v", de.Name(), err)))
			continue
		}

		entries = append(entries, listEntry{
			File:  de.Name(),
			Date:  fm.Date,
			Title: fm.Title,
			Tags:  fm.Tags,
		})
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No posts yet.")
		return nil, nil
	}

	// Dated filenames sort chronologically; newest first.
	sort.Slice(entries, func(i, j int) bool { return entries[i].File > entries[j].File })
	return entries, nil
}
