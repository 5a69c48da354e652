package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clarencejohnson126/outreach-cli/internal/classify"
	"github.com/clarencejohnson126/outreach-cli/internal/compose"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
	"github.com/clarencejohnson126/outreach-cli/internal/personalize"
	"github.com/clarencejohnson126/outreach-cli/internal/pipeline"
)

var (
	previewEmail   string
	previewFirst   string
	previewLast    string
	previewCompany string
	previewSummary string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Compose one draft from flags without touching any files",
	Long: `Runs the enrichment chain (classification, hook extraction,
composition) for a single hand-entered lead and prints the draft. Website
fetching is skipped; useful for checking what a given lead would receive.

Example:
  outreach-cli preview --email max@bau-muster.de --first Max --last Muster \
    --company "Muster Elektrotechnik GmbH" --summary "seit 1998, 12 Mitarbeiter"`,
	RunE: func(_ *cobra.Command, _ []string) error {
		raw := model.RawLead{
			Email:       previewEmail,
			FirstName:   previewFirst,
			LastName:    previewLast,
			CompanyName: previewCompany,
			Summary:     previewSummary,
		}

		tmpl, err := loadTemplates()
		if err != nil {
			return err
		}

		trade := classify.Trade(raw)
		hook := personalize.Hook(raw, "", trade, time.Now())
		lead := pipeline.Enrich(raw, trade, "", hook)
		draft := compose.New(tmpl, cfg.Compose.DemoURL).Draft(lead)

		fmt.Fprintf(os.Stdout, "Trade:   %s\nStatus:  %s\nHook:    %s\n\n", trade, lead.Status, orDash(hook))
		fmt.Fprintf(os.Stdout, "Betreff: %s\n\n%s\n", draft.Subject, draft.Body)
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	previewCmd.Flags().StringVar(&previewEmail, "email", "", "lead email address")
	previewCmd.Flags().StringVar(&previewFirst, "first", "", "first name")
	previewCmd.Flags().StringVar(&previewLast, "last", "", "last name")
	previewCmd.Flags().StringVar(&previewCompany, "company", "", "company name")
	previewCmd.Flags().StringVar(&previewSummary, "summary", "", "free-text bio/summary")
	rootCmd.AddCommand(previewCmd)
}
