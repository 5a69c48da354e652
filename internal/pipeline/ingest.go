package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/clarencejohnson126/outreach-cli/internal/fetcher"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
)

// DiscoverInputs enumerates spreadsheet files (xlsx, csv) in the input
// directory, sorted by name. An unreadable directory is fatal; a readable
// directory without spreadsheets returns an empty list.
func DiscoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: read input dir")
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".xlsx", ".csv":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ReadLeads parses every row of a spreadsheet file into RawLead values.
// Returns all rows read plus the count of rows discarded for lacking a
// usable email address.
func ReadLeads(path string, sheetIndex int) (leads []model.RawLead, skipped int, err error) {
	var header []string
	var rows [][]string

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		header, rows, err = fetcher.ReadXLSX(path, fetcher.XLSXOptions{SheetIndex: sheetIndex})
	case ".csv":
		header, rows, err = fetcher.ReadCSV(path, fetcher.CSVOptions{TrimSpace: true})
	default:
		return nil, 0, eris.Errorf("pipeline: unsupported input file %s", path)
	}
	if err != nil {
		return nil, 0, err
	}

	cols := mapHeader(header)
	for _, row := range rows {
		lead := rowToLead(cols, row)
		if !lead.HasUsableEmail() {
			skipped++
			continue
		}
		leads = append(leads, lead)
	}
	return leads, skipped, nil
}

// headerAliases maps normalized column names to RawLead fields. Spreadsheets
// come from several export tools, so each field accepts the common English
// and German spellings. Missing columns are simply absent values.
var headerAliases = map[string]string{
	"domain":        "domain",
	"website":       "domain",
	"companydomain": "domain",

	"email":        "email",
	"emailaddress": "email",
	"mail":         "email",

	"validatedemail": "alt_email",
	"altemail":       "alt_email",
	"secondaryemail": "alt_email",
	"workemail":      "alt_email",

	"firstname": "first_name",
	"vorname":   "first_name",

	"lastname": "last_name",
	"nachname": "last_name",

	"fullname": "full_name",
	"name":     "full_name",

	"company":      "company",
	"companyname":  "company",
	"firma":        "company",
	"unternehmen":  "company",
	"organization": "company",

	"title":    "title",
	"jobtitle": "title",
	"position": "title",

	"headline":       "secondary_title",
	"secondarytitle": "secondary_title",
	"description":    "secondary_title",

	"industry": "industry",
	"branche":  "industry",

	"companylocation": "company_location",
	"companycity":     "company_location",
	"standort":        "company_location",

	"location":        "contact_location",
	"city":            "contact_location",
	"ort":             "contact_location",
	"contactlocation": "contact_location",

	"summary":      "summary",
	"bio":          "summary",
	"about":        "summary",
	"beschreibung": "summary",

	"linkedin":    "profile_url",
	"linkedinurl": "profile_url",
	"profileurl":  "profile_url",

	"companyurl": "company_url",
	"websiteurl": "company_url",
	"url":        "company_url",
	"webseite":   "company_url",
}

// mapHeader resolves each header cell to a RawLead field name; unknown
// columns map to "" and are ignored.
func mapHeader(header []string) []string {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = headerAliases[normalizeHeader(h)]
	}
	return cols
}

// normalizeHeader lowercases and strips everything but letters and digits so
// "First Name", "first_name", and "FirstName" all match.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func rowToLead(cols []string, row []string) model.RawLead {
	var lead model.RawLead
	for i, field := range cols {
		if field == "" || i >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[i])
		if val == "" {
			continue
		}
		switch field {
		case "domain":
			lead.Domain = val
		case "email":
			lead.Email = val
		case "alt_email":
			lead.AltEmail = val
		case "first_name":
			lead.FirstName = val
		case "last_name":
			lead.LastName = val
		case "full_name":
			lead.FullName = val
		case "company":
			lead.CompanyName = val
		case "title":
			lead.Title = val
		case "secondary_title":
			lead.SecondaryTitle = val
		case "industry":
			lead.Industry = val
		case "company_location":
			lead.CompanyLocation = val
		case "contact_location":
			lead.ContactLocation = val
		case "summary":
			lead.Summary = val
		case "profile_url":
			lead.ProfileURL = val
		case "company_url":
			lead.CompanyURL = val
		}
	}
	return lead
}
