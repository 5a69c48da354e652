package model

import "time"

// LeadResult pairs an enriched lead with its generated draft and the path the
// draft was written to.
type LeadResult struct {
	Lead      EnrichedLead `json:"lead"`
	Draft     EmailDraft   `json:"draft"`
	DraftPath string       `json:"draft_path,omitempty"`
}

// RunSummary tallies one batch run for the run log.
type RunSummary struct {
	RunID       string             `json:"run_id"`
	StartedAt   time.Time          `json:"started_at"`
	InputFiles  []string           `json:"input_files"`
	RowsRead    int                `json:"rows_read"`
	RowsSkipped int                `json:"rows_skipped"` // rows without a usable email
	Processed   int                `json:"processed"`
	ByStatus    map[LeadStatus]int `json:"by_status"`
	ByTrade     map[string]int     `json:"by_trade"`
	Results     []LeadResult       `json:"results"`
}
