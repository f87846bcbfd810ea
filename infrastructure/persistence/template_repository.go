package persistence

import (
	"context"
	"fmt"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
	"github.com/storepulse/storepulse/pkg/storeerror"
)

// templateRepository implements TemplateRepository over a RecordStore
type templateRepository struct {
	store outbound.RecordStore
	log   logger.Logger
}

func NewTemplateRepository(store outbound.RecordStore, log logger.Logger) outbound.TemplateRepository {
	return &templateRepository{store: store, log: log}
}

func (r *templateRepository) All(ctx context.Context) ([]domain.Template, error) {
	return r.query(ctx, allTemplatesQuery())
}

func (r *templateRepository) Active(ctx context.Context) ([]domain.Template, error) {
	return r.query(ctx, activeTemplatesQuery())
}

func (r *templateRepository) ByCategory(ctx context.Context, category domain.TemplateCategory) ([]domain.Template, error) {
	return r.query(ctx, templatesByCategoryQuery(category))
}

func (r *templateRepository) ForStore(ctx context.Context, storeCode string) ([]domain.Template, error) {
	return r.query(ctx, templatesForStoreQuery(storeCode))
}

func (r *templateRepository) query(ctx context.Context, q outbound.Query) ([]domain.Template, error) {
	recs, err := r.store.Query(ctx, recordTypeTemplate, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	templates := make([]domain.Template, 0, len(recs))
	for _, rec := range recs {
		t, ok := templateFromRecord(rec)
		if !ok {
			// Malformed records are dropped, not escalated: a single bad
			// record in the multi-tenant store must not abort a bulk fetch.
			r.log.Debug(ctx, "dropping unmappable template record", map[string]interface{}{
				"record_id": rec.ID,
			})
			continue
		}
		templates = append(templates, t)
	}
	return templates, nil
}

func (r *templateRepository) Get(ctx context.Context, id string) (*domain.Template, error) {
	rec, err := r.store.Fetch(ctx, recordTypeTemplate, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	t, ok := templateFromRecord(*rec)
	if !ok {
		r.log.Debug(ctx, "fetched template record did not map", map[string]interface{}{
			"record_id": rec.ID,
		})
		return nil, nil
	}
	return &t, nil
}

// Save upserts the template. The returned value is rebuilt from the store's
// authoritative saved record so remote-assigned fields win over the caller's
// copy. If that reconstruction fails, the caller's template is returned
// unchanged; in this fallback path it may lack server-assigned fields.
// No conflict detection is performed: overlapping saves are last-write-wins.
func (r *templateRepository) Save(ctx context.Context, template domain.Template) (domain.Template, error) {
	saved, err := r.store.Save(ctx, templateToRecord(template))
	if err != nil {
		return domain.Template{}, fmt.Errorf("failed to save template: %w", err)
	}
	t, ok := templateFromRecord(saved)
	if !ok {
		r.log.Warn(ctx, "saved template record did not map back, returning caller copy", map[string]interface{}{
			"record_id": saved.ID,
		})
		return template, nil
	}
	return t, nil
}

func (r *templateRepository) Delete(ctx context.Context, template domain.Template) error {
	if template.ID == "" {
		return storeerror.Invalid("delete template", "template has no identifier")
	}
	if err := r.store.Delete(ctx, recordTypeTemplate, template.ID); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

func (r *templateRepository) Publish(ctx context.Context, template domain.Template) (domain.Template, error) {
	return r.Save(ctx, template.Publish())
}

func (r *templateRepository) Archive(ctx context.Context, template domain.Template) (domain.Template, error) {
	return r.Save(ctx, template.Archive())
}
