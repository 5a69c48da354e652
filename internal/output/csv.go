package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rotisserie/eris"

	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

// aggregateColumns defines the ordered aggregate CSV columns.
var aggregateColumns = []string{
	"first_name",
	"last_name",
	"company",
	"email",
	"trade",
	"hook",
	"status",
	"confidence",
}

// WriteAggregateCSV writes one row per enriched lead, in ingestion order.
// encoding/csv applies RFC 4180 quoting, so commas, quotes, and newlines in
// values round-trip exactly.
func WriteAggregateCSV(results []model.LeadResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "output: create aggregate csv")
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)

	if err := w.Write(aggregateColumns); err != nil {
		return eris.Wrap(err, "output: write csv header")
	}

	for _, r := range results {
		lead := r.Lead
		row := []string{
			lead.FirstName,
			lead.LastName,
			lead.Company,
			lead.Email,
			lead.Trade,
			lead.Hook,
			string(lead.Status),
			fmt.Sprintf("%.2f", lead.Confidence),
		}
		if err := w.Write(row); err != nil {
			return eris.Wrap(err, "output: write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "output: flush csv")
	}
	return nil
}
