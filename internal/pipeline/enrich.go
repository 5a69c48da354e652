package pipeline

import (
	"strings"

	"github.com/clarencejohnson126/outreach-cli/internal/model"
	"github.com/clarencejohnson126/outreach-cli/internal/website"
)

// Confidence levels attached to the three lead statuses.
const (
	confidenceReady        = 0.85
	confidenceLow          = 0.5
	confidenceMissingEmail = 0.2
)

// Enrich derives the immutable EnrichedLead from a raw row plus the
// per-lead enrichment outputs (trade, website summary, hook). One
// EnrichedLead always yields exactly one draft.
func Enrich(raw model.RawLead, trade, websiteSummary, hook string) model.EnrichedLead {
	first, last := resolveName(raw)
	email := raw.BestEmail()
	company := strings.TrimSpace(raw.CompanyName)

	lead := model.EnrichedLead{
		FirstName:      first,
		LastName:       last,
		Company:        company,
		Email:          email,
		Trade:          trade,
		WebsiteURL:     resolveWebsiteURL(raw),
		City:           resolveCity(raw),
		SourceURL:      resolveSourceURL(raw),
		WebsiteSummary: websiteSummary,
		Hook:           hook,
	}

	switch {
	case email == "":
		lead.Status = model.StatusMissingEmail
		lead.Confidence = confidenceMissingEmail
	case first == "" || company == "":
		lead.Status = model.StatusLowConfidence
		lead.Confidence = confidenceLow
	default:
		lead.Status = model.StatusReady
		lead.Confidence = confidenceReady
	}

	return lead
}

// resolveName prefers explicit first/last fields and falls back to splitting
// the full name on whitespace: first token is the first name, the remainder
// the last name.
func resolveName(raw model.RawLead) (first, last string) {
	first = strings.TrimSpace(raw.FirstName)
	last = strings.TrimSpace(raw.LastName)
	if first != "" || last != "" {
		return first, last
	}

	parts := strings.Fields(raw.FullName)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	last = strings.Join(parts[1:], " ")
	return first, last
}

// resolveWebsiteURL renders a fetchable company URL from the domain field,
// falling back to the company URL column.
func resolveWebsiteURL(raw model.RawLead) string {
	domain := strings.TrimSpace(raw.Domain)
	if domain == "" {
		domain = strings.TrimSpace(raw.CompanyURL)
	}
	if domain == "" {
		return ""
	}
	return website.NormalizeURL(domain)
}

// resolveCity takes the first comma-separated segment of the contact
// location, falling back to the company location.
func resolveCity(raw model.RawLead) string {
	loc := strings.TrimSpace(raw.ContactLocation)
	if loc == "" {
		loc = strings.TrimSpace(raw.CompanyLocation)
	}
	if loc == "" {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(loc, ",", 2)[0])
}

func resolveSourceURL(raw model.RawLead) string {
	if u := strings.TrimSpace(raw.ProfileURL); u != "" {
		return u
	}
	return strings.TrimSpace(raw.CompanyURL)
}
