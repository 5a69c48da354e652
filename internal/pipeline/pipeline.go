// Package pipeline orchestrates one batch run: discover spreadsheets, ingest
// rows, enrich each lead sequentially, write per-lead drafts plus the
// aggregate CSV, and summarize the run.
package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/clarencejohnson126/outreach-cli/internal/classify"
	"github.com/clarencejohnson126/outreach-cli/internal/compose"
	"github.com/clarencejohnson126/outreach-cli/internal/config"
	"github.com/clarencejohnson126/outreach-cli/internal/model"
	"github.com/clarencejohnson126/outreach-cli/internal/output"
	"github.com/clarencejohnson126/outreach-cli/internal/personalize"
)

// Summarizer fetches a short description of a lead's website. Implementations
// must degrade every failure to "" rather than returning an error.
type Summarizer interface {
	Summarize(ctx context.Context, domain string) string
}

// Runner executes batch runs.
type Runner struct {
	cfg      *config.Config
	summ     Summarizer
	composer *compose.Composer
	now      func() time.Time
}

// NewRunner wires a Runner from its collaborators.
func NewRunner(cfg *config.Config, summ Summarizer, composer *compose.Composer) *Runner {
	return &Runner{cfg: cfg, summ: summ, composer: composer, now: time.Now}
}

// Run processes every qualifying lead in the input directory. Per-lead
// failures (unreachable websites, sparse rows) never abort the batch; only
// unreadable inputs and unwritable outputs do. Even a run with zero
// qualifying leads writes the aggregate CSV and run log.
func (r *Runner) Run(ctx context.Context) (*model.RunSummary, error) {
	summary := &model.RunSummary{
		RunID:     uuid.NewString(),
		StartedAt: r.now(),
		ByStatus:  make(map[model.LeadStatus]int),
		ByTrade:   make(map[string]int),
	}
	log := zap.L().With(zap.String("run_id", summary.RunID))

	// Discover.
	files, err := DiscoverInputs(r.cfg.Input.Dir)
	if err != nil {
		return nil, err
	}
	summary.InputFiles = files
	if len(files) == 0 {
		log.Warn("pipeline: no spreadsheets found", zap.String("dir", r.cfg.Input.Dir))
	}

	// Ingest.
	var leads []model.RawLead
	for _, file := range files {
		fileLeads, skipped, err := ReadLeads(file, r.cfg.Input.SheetIndex)
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: ingest %s", filepath.Base(file))
		}
		summary.RowsRead += len(fileLeads) + skipped
		summary.RowsSkipped += skipped
		leads = append(leads, fileLeads...)

		log.Info("pipeline: ingested file",
			zap.String("file", filepath.Base(file)),
			zap.Int("leads", len(fileLeads)),
			zap.Int("skipped", skipped),
		)
	}

	writer, err := output.NewWriter(r.cfg.Output.Dir)
	if err != nil {
		return nil, err
	}

	// Enrich sequentially. The limiter enforces the fixed inter-lead delay
	// that keeps outbound fetches from bursting across many target sites.
	limiter := rate.NewLimiter(rate.Every(r.cfg.Batch.LeadDelay()), 1)
	progressEvery := r.cfg.Batch.ProgressInterval
	if progressEvery <= 0 {
		progressEvery = 10
	}

	for i, raw := range leads {
		if err := limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "pipeline: wait for pacing")
		}

		result := r.processLead(ctx, raw)
		result.DraftPath, err = writer.WriteDraft(result.Lead, result.Draft)
		if err != nil {
			return nil, err
		}

		summary.Results = append(summary.Results, result)
		summary.Processed++
		summary.ByStatus[result.Lead.Status]++
		summary.ByTrade[result.Lead.Trade]++

		if (i+1)%progressEvery == 0 {
			log.Info("pipeline: progress",
				zap.Int("processed", i+1),
				zap.Int("total", len(leads)),
			)
		}
	}

	// Write aggregate artifacts; a run always produces these, even empty.
	csvPath := filepath.Join(r.cfg.Output.Dir, r.cfg.Output.CSVName)
	if err := output.WriteAggregateCSV(summary.Results, csvPath); err != nil {
		return nil, err
	}
	logPath := filepath.Join(r.cfg.Output.Dir, r.cfg.Output.RunLogName)
	if err := output.WriteRunLog(*summary, logPath); err != nil {
		return nil, err
	}

	log.Info("pipeline: run complete",
		zap.Int("rows_read", summary.RowsRead),
		zap.Int("rows_skipped", summary.RowsSkipped),
		zap.Int("processed", summary.Processed),
		zap.Int("ready", summary.ByStatus[model.StatusReady]),
		zap.Int("low_confidence", summary.ByStatus[model.StatusLowConfidence]),
		zap.Int("missing_email", summary.ByStatus[model.StatusMissingEmail]),
	)

	return summary, nil
}

// processLead runs the per-lead enrichment chain: website summary, trade
// classification, hook extraction, then draft composition. Nothing in here
// fails the batch; a dead website simply yields an empty summary.
func (r *Runner) processLead(ctx context.Context, raw model.RawLead) model.LeadResult {
	var websiteSummary string
	if !r.cfg.Fetch.Disabled {
		websiteSummary = r.summ.Summarize(ctx, fetchTarget(raw))
	}

	trade := classify.Trade(raw)
	hook := personalize.Hook(raw, websiteSummary, trade, r.now())
	lead := Enrich(raw, trade, websiteSummary, hook)
	draft := r.composer.Draft(lead)

	zap.L().Debug("pipeline: lead processed",
		zap.String("email", lead.Email),
		zap.String("trade", trade),
		zap.String("status", string(lead.Status)),
		zap.Bool("has_hook", hook != ""),
	)

	return model.LeadResult{Lead: lead, Draft: draft}
}

// fetchTarget picks the domain the summarizer should fetch.
func fetchTarget(raw model.RawLead) string {
	if raw.Domain != "" {
		return raw.Domain
	}
	return raw.CompanyURL
}
