package output

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

// FormatRunLog renders the human-readable run log. Status counts are always
// enumerated (including zeroes) so an operator can triage MISSING_EMAIL and
// LOW_CONFIDENCE without reading source data; trades are sorted by frequency
// descending, ties alphabetically.
func FormatRunLog(s model.RunSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Outreach Run %s\n", s.RunID)
	fmt.Fprintf(&b, "Started: %s\n\n", s.StartedAt.Format(time.RFC3339))

	b.WriteString("## Inputs\n")
	for _, f := range s.InputFiles {
		fmt.Fprintf(&b, "- %s\n", filepath.Base(f))
	}
	fmt.Fprintf(&b, "- Rows read: %d\n", s.RowsRead)
	fmt.Fprintf(&b, "- Rows skipped (no usable email): %d\n\n", s.RowsSkipped)

	b.WriteString("## Status\n")
	fmt.Fprintf(&b, "- Processed: %d\n", s.Processed)
	for _, st := range []model.LeadStatus{model.StatusReady, model.StatusLowConfidence, model.StatusMissingEmail} {
		fmt.Fprintf(&b, "- %s: %d\n", st, s.ByStatus[st])
	}
	b.WriteString("\n")

	b.WriteString("## Trades\n")
	for _, tc := range sortedTrades(s.ByTrade) {
		fmt.Fprintf(&b, "- %s: %d\n", tc.trade, tc.count)
	}
	b.WriteString("\n")

	b.WriteString("## Leads\n")
	for _, r := range s.Results {
		lead := r.Lead
		hook := lead.Hook
		if hook == "" {
			hook = "-"
		}
		fmt.Fprintf(&b, "- %s %s (%s) <%s>: %s, trade=%s, hook=%s\n",
			lead.FirstName, lead.LastName, lead.Company, lead.Email,
			lead.Status, lead.Trade, hook)
	}

	return b.String()
}

// WriteRunLog persists the run log next to the other artifacts.
func WriteRunLog(s model.RunSummary, path string) error {
	if err := writeFileAtomic(path, []byte(FormatRunLog(s))); err != nil {
		return eris.Wrap(err, "output: write run log")
	}
	return nil
}

type tradeCount struct {
	trade string
	count int
}

func sortedTrades(byTrade map[string]int) []tradeCount {
	out := make([]tradeCount, 0, len(byTrade))
	for trade, count := range byTrade {
		out = append(out, tradeCount{trade, count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].trade < out[j].trade
	})
	return out
}
