package persistence

import (
	"context"
	"fmt"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
	"github.com/storepulse/storepulse/pkg/storeerror"
)

// auditRepository implements AuditRepository over a RecordStore
type auditRepository struct {
	store outbound.RecordStore
	log   logger.Logger
}

func NewAuditRepository(store outbound.RecordStore, log logger.Logger) outbound.AuditRepository {
	return &auditRepository{store: store, log: log}
}

func (r *auditRepository) All(ctx context.Context) ([]domain.Audit, error) {
	return r.query(ctx, allAuditsQuery())
}

func (r *auditRepository) ByTemplate(ctx context.Context, templateID string) ([]domain.Audit, error) {
	return r.query(ctx, auditsByTemplateQuery(templateID))
}

func (r *auditRepository) ByStatus(ctx context.Context, statuses ...domain.AuditStatus) ([]domain.Audit, error) {
	return r.query(ctx, auditsByStatusQuery(statuses...))
}

func (r *auditRepository) InProgress(ctx context.Context) ([]domain.Audit, error) {
	return r.query(ctx, inProgressAuditsQuery())
}

func (r *auditRepository) query(ctx context.Context, q outbound.Query) ([]domain.Audit, error) {
	recs, err := r.store.Query(ctx, recordTypeAudit, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query audits: %w", err)
	}
	audits := make([]domain.Audit, 0, len(recs))
	for _, rec := range recs {
		a, ok := auditFromRecord(rec)
		if !ok {
			r.log.Debug(ctx, "dropping unmappable audit record", map[string]interface{}{
				"record_id": rec.ID,
			})
			continue
		}
		audits = append(audits, a)
	}
	return audits, nil
}

func (r *auditRepository) Get(ctx context.Context, id string) (*domain.Audit, error) {
	rec, err := r.store.Fetch(ctx, recordTypeAudit, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	a, ok := auditFromRecord(*rec)
	if !ok {
		r.log.Debug(ctx, "fetched audit record did not map", map[string]interface{}{
			"record_id": rec.ID,
		})
		return nil, nil
	}
	return &a, nil
}

// Save upserts the audit, rebuilding the returned value from the saved
// record. On reconstruction failure the caller's value is returned unchanged
// (it may then lack server-assigned fields). Last-write-wins on conflict.
func (r *auditRepository) Save(ctx context.Context, audit domain.Audit) (domain.Audit, error) {
	saved, err := r.store.Save(ctx, auditToRecord(audit))
	if err != nil {
		return domain.Audit{}, fmt.Errorf("failed to save audit: %w", err)
	}
	a, ok := auditFromRecord(saved)
	if !ok {
		r.log.Warn(ctx, "saved audit record did not map back, returning caller copy", map[string]interface{}{
			"record_id": saved.ID,
		})
		return audit, nil
	}
	return a, nil
}

func (r *auditRepository) Delete(ctx context.Context, audit domain.Audit) error {
	if audit.ID == "" {
		return storeerror.Invalid("delete audit", "audit has no identifier")
	}
	if err := r.store.Delete(ctx, recordTypeAudit, audit.ID); err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	return nil
}

func (r *auditRepository) Start(ctx context.Context, audit domain.Audit) (domain.Audit, error) {
	return r.Save(ctx, audit.Start())
}

func (r *auditRepository) Pause(ctx context.Context, audit domain.Audit) (domain.Audit, error) {
	return r.Save(ctx, audit.Pause())
}

func (r *auditRepository) Resume(ctx context.Context, audit domain.Audit) (domain.Audit, error) {
	return r.Save(ctx, audit.Resume())
}

func (r *auditRepository) Submit(ctx context.Context, audit domain.Audit) (domain.Audit, error) {
	return r.Save(ctx, audit.Submit())
}

// Complete persists the completed audit with the score pair as given;
// the transition performs no bounds check (see Audit.Complete)
func (r *auditRepository) Complete(ctx context.Context, audit domain.Audit, finalScore, maxScore float64) (domain.Audit, error) {
	return r.Save(ctx, audit.Complete(finalScore, maxScore))
}

// AddResponse appends the entry and persists the audit. When the transition
// refuses the entry (submitted or completed audit) nothing is saved and the
// audit is returned as passed in.
func (r *auditRepository) AddResponse(ctx context.Context, audit domain.Audit, entry domain.ResponseEntry) (domain.Audit, error) {
	updated, err := audit.AddResponse(entry)
	if err != nil {
		return audit, err
	}
	return r.Save(ctx, updated)
}
