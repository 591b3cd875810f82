package cli

import (
	"fmt"
	"os"

	"github.com/aeshirey/postkit/internal/config"
	"github.com/aeshirey/postkit/internal/scaffold"
	"github.com/aeshirey/postkit/internal/ui"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the postkit setup",
	Long: `Run diagnostic checks: config file schema, posts directory, version
requirement, and the embedded post template.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	fail := func(msg string) {
		fmt.Fprintln(out, ui.Fail(msg))
		failed++
	}
	ok := func(msg string) {
		fmt.Fprintln(out, ui.OK(msg))
	}

	// Config file: absent is fine (defaults apply), present must pass schema.
	configFile := config.FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		ok(fmt.Sprintf("no config file at %s %s", configFile, ui.Faint("(using defaults)")))
	} else {
		result, err := config.ValidateFile(configFile)
		switch {
		case err != nil:
			fail(fmt.Sprintf("config file unreadable: %v", err))
		case !result.Valid:
			fail(fmt.Sprintf("config file %s has schema violations:", configFile))
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				fmt.Fprintf(out, "    - %s\n", msg)
			}
		default:
			ok("config file valid")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fail(fmt.Sprintf("config unusable: %v", err))
		return fmt.Errorf("%d check(s) failed", failed)
	}

	// Posts directory. `new` deliberately never creates it, so surface the
	// problem here where it can be fixed before a write fails.
	if info, err := os.Stat(cfg.PostsDir); err != nil {
		fail(fmt.Sprintf("posts directory %q not found (create it before running `%s new`)", cfg.PostsDir, rootCmd.Use))
	} else if !info.IsDir() {
		fail(fmt.Sprintf("%q exists but is not a directory", cfg.PostsDir))
	} else {
		ok(fmt.Sprintf("posts directory %q exists", cfg.PostsDir))
	}

	// Version requirement from config.
	if cfg.Requires == "" {
		ok("no version requirement configured")
	} else if satisfied, err := config.Satisfies(buildVersion, cfg.Requires); err != nil {
		fail(fmt.Sprintf("requires check: %v", err))
	} else if !satisfied {
		fail(fmt.Sprintf("version %s does not satisfy requires %q", buildVersion, cfg.Requires))
	} else {
		ok(fmt.Sprintf("version %s satisfies requires %q", buildVersion, cfg.Requires))
	}

	// Embedded template.
	if _, err := scaffold.Template(); err != nil {
		fail(fmt.Sprintf("post template: %v", err))
	} else {
		ok("post template parses")
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
