package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/lawdata/internal/core/domain"
	"github.com/custodia-labs/lawdata/internal/core/ports/driven"
	"github.com/custodia-labs/lawdata/internal/logger"
)

// Resolver fetches one precedent through the fallback chain
// PRIMARY → HTML_FALLBACK → SECONDARY_JSON, then applies the optional
// supplement. The chain is strictly sequential.
type Resolver struct {
	primary      driven.PrecedentSource
	page         driven.PrecedentPageSource
	secondary    driven.TaxLawSource
	supplementer driven.PrecedentSupplementer
	newTraceID   func() string
}

// NewResolver creates a resolver. supplementer may be nil.
func NewResolver(
	primary driven.PrecedentSource,
	page driven.PrecedentPageSource,
	secondary driven.TaxLawSource,
	supplementer driven.PrecedentSupplementer,
) *Resolver {
	return &Resolver{
		primary:      primary,
		page:         page,
		secondary:    secondary,
		supplementer: supplementer,
		newTraceID:   uuid.NewString,
	}
}

// Resolve runs the chain for a precedent id.
//
// It never returns an error for source failures: the result names the
// stage that produced the record, or domain.SourceNone with the last raw
// payload when none did. A cancelled ctx ends the chain at the next stage
// boundary with the same diagnostics-only result.
func (r *Resolver) Resolve(ctx context.Context, id int, opts domain.ResolveOptions) *domain.ResolvedContent {
	out := &domain.ResolvedContent{
		TraceID:      r.newTraceID(),
		SourceSystem: domain.SourceNone,
	}
	logger.Section(fmt.Sprintf("Resolve precedent %d", id))
	logger.Debug("[%s] trace started", out.TraceID)

	if record := r.tryPrimary(ctx, id, opts, out); record != nil {
		return r.finish(ctx, out, domain.SourcePrimary, record, opts)
	}
	if ctx.Err() != nil {
		return r.abort(ctx, out)
	}

	out.Attempts = append(out.Attempts, domain.SourceHTMLFallback)
	page, err := r.page.FetchPrecedentPage(ctx, id)
	if err != nil {
		logger.Warn("[%s] %s failed: %v", out.TraceID, domain.SourceHTMLFallback, err)
		return out
	}
	out.Raw = page.Raw

	if !page.IsRedirect() {
		if page.Record == nil {
			return out
		}
		return r.finish(ctx, out, domain.SourceHTMLFallback, page.Record, opts)
	}

	if page.SecondaryID == "" {
		logger.Warn("[%s] %v: %s is not a tax-law document", out.TraceID, domain.ErrRedirect, page.Location)
		return out
	}
	if ctx.Err() != nil {
		return r.abort(ctx, out)
	}

	out.Attempts = append(out.Attempts, domain.SourceSecondaryJSON)
	logger.Debug("[%s] following redirect to tax-law document %s", out.TraceID, page.SecondaryID)
	decision, err := r.secondary.GetDecision(ctx, page.SecondaryID)
	if err != nil {
		logger.Warn("[%s] %s failed: %v", out.TraceID, domain.SourceSecondaryJSON, err)
		return out
	}
	out.Raw = decision.Raw
	if decision.Content == nil {
		return out
	}
	return r.finish(ctx, out, domain.SourceSecondaryJSON, decision.Content, opts)
}

func (r *Resolver) tryPrimary(ctx context.Context, id int, opts domain.ResolveOptions, out *domain.ResolvedContent) *domain.Precedent {
	out.Attempts = append(out.Attempts, domain.SourcePrimary)
	result, err := r.primary.GetPrecedent(ctx, domain.PrecedentRequest{ID: id, Name: opts.Name})
	if result != nil && result.Raw != nil {
		out.Raw = result.Raw
	}
	if err != nil {
		logger.Warn("[%s] %s failed: %v", out.TraceID, domain.SourcePrimary, err)
		return nil
	}
	if result.IsEmpty() {
		logger.Debug("[%s] %s returned no content", out.TraceID, domain.SourcePrimary)
		return nil
	}
	return result.Content
}

// finish records the producing stage and runs the supplement when the
// record is eligible. Supplement failures are logged and ignored.
func (r *Resolver) finish(
	ctx context.Context, out *domain.ResolvedContent, source domain.SourceSystem,
	record *domain.Precedent, opts domain.ResolveOptions,
) *domain.ResolvedContent {
	out.SourceSystem = source
	out.Record = record
	logger.Info("[%s] resolved from %s", out.TraceID, source.Description())

	if r.supplementer == nil || opts.SkipSupplement || !supplementEligible(record, opts) {
		return out
	}
	changed, err := r.supplementer.Supplement(ctx, record)
	if err != nil {
		logger.Warn("[%s] supplement failed: %v", out.TraceID, err)
		return out
	}
	out.Supplemented = changed
	return out
}

func (r *Resolver) abort(ctx context.Context, out *domain.ResolvedContent) *domain.ResolvedContent {
	logger.Warn("[%s] cancelled: %v", out.TraceID, ctx.Err())
	return out
}

// supplementEligible reports whether the record was collected from the
// workers' compensation service.
func supplementEligible(record *domain.Precedent, opts domain.ResolveOptions) bool {
	if record.DataSource != nil {
		return *record.DataSource == domain.DataSourceCOMWEL
	}
	return opts.DataSource == domain.DataSourceCOMWEL
}
