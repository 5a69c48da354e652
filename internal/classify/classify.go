// Package classify maps a lead's free-text fields to one construction-trade
// category using an ordered list of case-insensitive regex rules.
package classify

import (
	"regexp"
	"strings"

	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

// FallbackTrade is returned when no rule matches. It deliberately carries no
// personalization value: the composer suppresses hook sentences that would
// merely repeat it.
const FallbackTrade = "Handwerk"

// rule pairs a compiled pattern with its trade label. Rule order is load-
// bearing: earlier rules win even when a later rule would also match, so the
// list must never be reordered for convenience.
type rule struct {
	re    *regexp.Regexp
	trade string
}

var rules = []rule{
	{re: regexp.MustCompile(`(?i)elektro|blitzschutz|gebäudetechnik`), trade: "Elektrotechnik"},
	{re: regexp.MustCompile(`(?i)sanitär|heizung|klima(anlage)?n?\b|\bshk\b|haustechnik`), trade: "Sanitär & Heizung"},
	{re: regexp.MustCompile(`(?i)dachdeck|bedachung|dachbau|flachdach`), trade: "Dachdeckerei"},
	{re: regexp.MustCompile(`(?i)maler|lackier|anstrich`), trade: "Malerbetrieb"},
	{re: regexp.MustCompile(`(?i)zimmerei|zimmerer|holzbau|holzhaus`), trade: "Zimmerei & Holzbau"},
	{re: regexp.MustCompile(`(?i)fliesen|naturstein|verfugung`), trade: "Fliesenleger"},
	{re: regexp.MustCompile(`(?i)stuckateur|trockenbau|innenausbau|akustikbau`), trade: "Trockenbau & Ausbau"},
	{re: regexp.MustCompile(`(?i)tischler|schreiner|möbelbau`), trade: "Tischlerei"},
	{re: regexp.MustCompile(`(?i)metallbau|schlosser|stahlbau`), trade: "Metallbau"},
	{re: regexp.MustCompile(`(?i)garten.?\s*und\s*landschaftsbau|galabau|landschaftsbau|gartenbau`), trade: "Garten- und Landschaftsbau"},
	{re: regexp.MustCompile(`(?i)gerüstbau|gerüst`), trade: "Gerüstbau"},
	{re: regexp.MustCompile(`(?i)fenster|rollladen|rolladen|sonnenschutz`), trade: "Fenster- & Rollladenbau"},
	{re: regexp.MustCompile(`(?i)bodenleger|parkett|estrich|bodenbelag`), trade: "Boden & Estrich"},
	{re: regexp.MustCompile(`(?i)kälte(technik)?|lüftung`), trade: "Kälte- & Lüftungstechnik"},
	{re: regexp.MustCompile(`(?i)abbruch|entkernung|rückbau`), trade: "Abbruch & Rückbau"},
	{re: regexp.MustCompile(`(?i)tiefbau|straßenbau|kanalbau|erdbau`), trade: "Tiefbau"},
	{re: regexp.MustCompile(`(?i)bauunternehmen|hochbau|rohbau|massivbau|maurer|baufirma|bau\s*gmbh`), trade: "Bauunternehmen"},
}

// Trade classifies a lead by evaluating the rule list against its
// concatenated free-text fields. First matching rule wins; with no match the
// fallback label is returned, never "".
func Trade(lead model.RawLead) string {
	text := ClassificationText(lead)
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.trade
		}
	}
	return FallbackTrade
}

// ClassificationText concatenates the fields the classifier inspects, in a
// fixed order, with single spaces.
func ClassificationText(lead model.RawLead) string {
	return strings.Join([]string{
		lead.CompanyName,
		lead.Title,
		lead.Industry,
		lead.Summary,
		lead.SecondaryTitle,
	}, " ")
}

// Trades returns all labels the classifier can produce, rule order first,
// fallback last. Used by the run report to keep trade breakdowns stable.
func Trades() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.trade)
	}
	return append(out, FallbackTrade)
}
