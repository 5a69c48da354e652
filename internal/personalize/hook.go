// Package personalize mines a lead's bio text and website summary for a
// single factual "hook" phrase that makes a templated email read as
// individually written.
package personalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/clarencejohnson126/outreach-cli/internal/classify"
	"github.com/clarencejohnson126/outreach-cli/internal/hash"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

// minYearsInBusiness is the threshold below which a founding year is not
// worth mentioning.
const minYearsInBusiness = 10

var (
	sinceYearRe = regexp.MustCompile(`(?i)seit\s+(\d{4})`)
	employeesRe = regexp.MustCompile(`(?i)(\d+)\s*Mitarbeiter`)
)

// candidate is one potential hook. High-value candidates (concrete numbers,
// certifications, family ownership) crowd out generic keyword hits.
type candidate struct {
	text string
	high bool
}

// summaryKeyword maps a lead-bio keyword family to a canned phrase.
type summaryKeyword struct {
	re     *regexp.Regexp
	phrase string
	high   bool
}

var bioKeywords = []summaryKeyword{
	{regexp.MustCompile(`(?i)sanierung|renovierung|modernisierung`), "Ihr Fokus auf Sanierung und Modernisierung", true},
	{regexp.MustCompile(`(?i)neubau`), "Ihre Neubauprojekte", false},
	{regexp.MustCompile(`(?i)gewerbe|gewerblich|industrie`), "Ihre Arbeit für Gewerbekunden", false},
	{regexp.MustCompile(`(?i)privatkunden|einfamilienhaus|eigenheim`), "Ihre Projekte für Privatkunden", false},
}

var websiteKeywords = []summaryKeyword{
	{regexp.MustCompile(`(?i)meister`), "Ihren Meisterbetrieb", true},
	{regexp.MustCompile(`(?i)familienbetrieb|familienunternehmen|familiengeführt`), "Ihren Familienbetrieb", true},
	{regexp.MustCompile(`(?i)region\b|regional`), "Ihre starke regionale Verwurzelung", false},
}

// Hook derives a personalization phrase for the lead, or "" when nothing
// usable was found. Selection among tied candidates is a pure function of the
// lead's identity (email, falling back to company name), never of iteration
// order or wall-clock time; now only pins the reference year for
// years-in-business math.
func Hook(lead model.RawLead, websiteSummary, trade string, now time.Time) string {
	candidates := collect(lead, websiteSummary, trade, now)
	if len(candidates) == 0 {
		return ""
	}

	pool := candidates
	if highs := highValue(candidates); len(highs) > 0 {
		pool = highs
	}

	seed := lead.BestEmail()
	if seed == "" {
		seed = lead.CompanyName
	}
	return pool[hash.Pick(seed, len(pool))].text
}

func collect(lead model.RawLead, websiteSummary, trade string, now time.Time) []candidate {
	var out []candidate

	// Years in business, from phrases like "seit 1998".
	if m := sinceYearRe.FindStringSubmatch(lead.Summary); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			if years := now.Year() - year; years > minYearsInBusiness {
				out = append(out, candidate{
					text: fmt.Sprintf("seit über %d Jahren am Markt", years),
					high: true,
				})
			}
		}
	}

	// Employee-count mentions.
	if m := employeesRe.FindStringSubmatch(lead.Summary); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			out = append(out, candidate{
				text: fmt.Sprintf("ein Team von %d Mitarbeitern", n),
				high: true,
			})
		}
	}

	// Service-line keywords in the bio.
	for _, kw := range bioKeywords {
		if kw.re.MatchString(lead.Summary) {
			out = append(out, candidate{text: kw.phrase, high: kw.high})
		}
	}

	// Organizational identity signals from the fetched website summary.
	for _, kw := range websiteKeywords {
		if kw.re.MatchString(websiteSummary) {
			out = append(out, candidate{text: kw.phrase, high: kw.high})
		}
	}

	// The trade label itself is the lowest-priority candidate; the generic
	// fallback label carries no personalization value and is excluded.
	if trade != "" && trade != classify.FallbackTrade {
		out = append(out, candidate{text: trade, high: false})
	}

	return out
}

func highValue(all []candidate) []candidate {
	var highs []candidate
	for _, c := range all {
		if c.high {
			highs = append(highs, c)
		}
	}
	return highs
}

// IsGeneric reports whether a hook is the generic trade fallback; the
// composer suppresses the personalization sentence for these.
func IsGeneric(hook string) bool {
	return hook == "" || strings.EqualFold(hook, classify.FallbackTrade)
}
