package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clarencejohnson126/outreach-cli/internal/compose"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
	"github.com/clarencejohnson126/outreach-cli/internal/pipeline"
	"github.com/clarencejohnson126/outreach-cli/internal/website"
)

var (
	runInput   string
	runOutput  string
	runNoFetch bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process all lead spreadsheets in the input directory",
	Long: `Discovers XLSX/CSV spreadsheets, enriches every lead with a usable
email address, and writes one draft file per lead plus an aggregate CSV and a
run log.

Examples:
  # Process ./leads into ./out (config defaults)
  outreach-cli run

  # Explicit directories, skip website fetches
  outreach-cli run --input ./leads --output ./out --no-fetch`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if runInput != "" {
			cfg.Input.Dir = runInput
		}
		if runOutput != "" {
			cfg.Output.Dir = runOutput
		}
		if runNoFetch {
			cfg.Fetch.Disabled = true
		}

		tmpl, err := loadTemplates()
		if err != nil {
			return err
		}

		runner := pipeline.NewRunner(
			cfg,
			website.New(cfg.Fetch.FetchTimeout()),
			compose.New(tmpl, cfg.Compose.DemoURL),
		)

		summary, err := runner.Run(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "run: batch failed")
		}

		zap.L().Info("run: done",
			zap.String("run_id", summary.RunID),
			zap.Int("processed", summary.Processed),
			zap.Int("skipped", summary.RowsSkipped),
			zap.Int("ready", summary.ByStatus[model.StatusReady]),
			zap.String("output_dir", cfg.Output.Dir),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "input directory with lead spreadsheets (overrides config)")
	runCmd.Flags().StringVar(&runOutput, "output", "", "output directory for drafts, CSV, and run log (overrides config)")
	runCmd.Flags().BoolVar(&runNoFetch, "no-fetch", false, "skip website fetches (hooks come from spreadsheet fields only)")
	rootCmd.AddCommand(runCmd)
}

// loadTemplates resolves the template set: the configured override file when
// present, the embedded defaults otherwise.
func loadTemplates() (*compose.Templates, error) {
	if cfg.Compose.TemplatesFile != "" {
		return compose.LoadFile(cfg.Compose.TemplatesFile)
	}
	return compose.Default()
}
