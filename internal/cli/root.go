package cli

import (
	"errors"

	"github.com/aeshirey/postkit/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// ErrCancelled is returned when the user declines the confirmation prompt.
// It is an expected termination path, not a failure to report: main maps it
// to exit status 1 without printing anything further.
var ErrCancelled = errors.New("cancelled by user")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds dated, slug-named Jekyll post files with front matter.
Tags are auto-detected from the title against a configured known-tag list,
with an interactive fallback when nothing matches.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
