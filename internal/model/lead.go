package model

import "strings"

// LeadStatus represents the data-quality outcome of enriching a lead.
type LeadStatus string

const (
	StatusReady         LeadStatus = "READY"
	StatusMissingEmail  LeadStatus = "MISSING_EMAIL"
	StatusLowConfidence LeadStatus = "LOW_CONFIDENCE"
)

// RawLead is one row of an input spreadsheet, mapped to named fields.
// All fields are optional; a RawLead only enters the pipeline if it has a
// usable email address (see HasUsableEmail).
type RawLead struct {
	Domain          string `json:"domain"`
	Email           string `json:"email"`
	AltEmail        string `json:"alt_email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	FullName        string `json:"full_name"`
	CompanyName     string `json:"company_name"`
	Title           string `json:"title"`
	SecondaryTitle  string `json:"secondary_title"`
	Industry        string `json:"industry"`
	CompanyLocation string `json:"company_location"`
	ContactLocation string `json:"contact_location"`
	Summary         string `json:"summary"`
	ProfileURL      string `json:"profile_url"`
	CompanyURL      string `json:"company_url"`
}

// BestEmail returns the first of email / alternate email that looks like an
// address, or "" when neither does.
func (l RawLead) BestEmail() string {
	if strings.Contains(l.Email, "@") {
		return strings.TrimSpace(l.Email)
	}
	if strings.Contains(l.AltEmail, "@") {
		return strings.TrimSpace(l.AltEmail)
	}
	return ""
}

// HasUsableEmail reports whether the lead qualifies for enrichment.
func (l RawLead) HasUsableEmail() bool {
	return l.BestEmail() != ""
}

// EnrichedLead is the derived record driving email generation. Created once
// per qualifying RawLead and never mutated afterward.
type EnrichedLead struct {
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Company        string     `json:"company"`
	Email          string     `json:"email"`
	Trade          string     `json:"trade"`
	WebsiteURL     string     `json:"website_url"`
	City           string     `json:"city"`
	SourceURL      string     `json:"source_url"`
	WebsiteSummary string     `json:"website_summary"`
	Hook           string     `json:"hook"`
	Confidence     float64    `json:"confidence"`
	Status         LeadStatus `json:"status"`
}

// EmailDraft is the generated outreach message for one enriched lead.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
