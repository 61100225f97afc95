package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	appconfig "github.com/polylint/polylint/internal/adapters/outbound/config"
	"github.com/polylint/polylint/internal/adapters/outbound/console"
	"github.com/polylint/polylint/internal/adapters/outbound/tui"
	"github.com/polylint/polylint/internal/domain"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		path       string
		jsonOutput bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configured linter and aggregate the results",
		Long:  "Resolve the project configuration, expand each kind's glob patterns, lint every matched file, and exit 0 only if everything passed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := console.New(cmd.ErrOrStderr())
			if quiet {
				log = console.NewQuiet(cmd.ErrOrStderr())
			}

			svc := newLintService(path, log)
			report, status := svc.Run(appconfig.New(), path, configPath)

			if jsonOutput {
				if err := renderReportJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if status != 0 {
				if failed := report.FailedKinds(); len(failed) > 0 {
					return fmt.Errorf("lint failed: %d kind(s) did not pass", len(failed))
				}
				return fmt.Errorf("lint failed: run aborted before any kind completed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Explicit config file path (skips convention search)")
	cmd.Flags().StringVar(&path, "path", ".", "Project path to lint")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress per-file progress output")

	return cmd
}

func renderReportJSON(cmd *cobra.Command, report *domain.RunReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
