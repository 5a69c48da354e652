package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clarencejohnson126/outreach-cli/internal/classify"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify ad-hoc text into a trade category",
	Long: `Runs the trade classifier on the given text and prints the label.
Handy when adjusting the rule table.

Example:
  outreach-cli classify "Elektro Müller GmbH Blitzschutz"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		lead := model.RawLead{Summary: strings.Join(args, " ")}
		fmt.Fprintln(os.Stdout, classify.Trade(lead))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
