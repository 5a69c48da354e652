package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

func TestTrade_RulePrecedence(t *testing.T) {
	// Text matching both the elektro rule and the sanitär rule must resolve
	// to the earlier rule's label.
	lead := model.RawLead{CompanyName: "Elektro und Sanitärinstallation Krause"}
	assert.Equal(t, "Elektrotechnik", Trade(lead))
}

func TestTrade_Table(t *testing.T) {
	tests := []struct {
		name     string
		lead     model.RawLead
		expected string
	}{
		{
			"company name keyword",
			model.RawLead{CompanyName: "Muster Elektrotechnik GmbH"},
			"Elektrotechnik",
		},
		{
			"heating in industry field",
			model.RawLead{Industry: "Heizung und Sanitär"},
			"Sanitär & Heizung",
		},
		{
			"roofing from summary",
			model.RawLead{Summary: "Meisterbetrieb für Bedachungen aller Art"},
			"Dachdeckerei",
		},
		{
			"case insensitive",
			model.RawLead{CompanyName: "MALERBETRIEB SCHULZE"},
			"Malerbetrieb",
		},
		{
			"secondary title considered",
			model.RawLead{SecondaryTitle: "Inhaber eines Gerüstbau-Betriebs"},
			"Gerüstbau",
		},
		{
			"galabau abbreviation",
			model.RawLead{CompanyName: "GalaBau Nord"},
			"Garten- und Landschaftsbau",
		},
		{
			"general builder",
			model.RawLead{CompanyName: "Hochbau Meier", Title: "Geschäftsführer"},
			"Bauunternehmen",
		},
		{
			"no keywords anywhere",
			model.RawLead{CompanyName: "Mustermann Consulting", Title: "CEO", Summary: "Beratung"},
			FallbackTrade,
		},
		{
			"empty lead",
			model.RawLead{},
			FallbackTrade,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Trade(tt.lead))
		})
	}
}

func TestTrade_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, Trade(model.RawLead{}))
}

func TestClassificationText_FieldOrder(t *testing.T) {
	lead := model.RawLead{
		CompanyName:    "A",
		Title:          "B",
		Industry:       "C",
		Summary:        "D",
		SecondaryTitle: "E",
	}
	assert.Equal(t, "A B C D E", ClassificationText(lead))
}

func TestTrades_FallbackLast(t *testing.T) {
	all := Trades()
	assert.Equal(t, FallbackTrade, all[len(all)-1])
	assert.Equal(t, "Elektrotechnik", all[0])
}
