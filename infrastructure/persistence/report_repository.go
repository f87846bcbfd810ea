package persistence

import (
	"context"
	"fmt"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
	"github.com/storepulse/storepulse/pkg/storeerror"
)

// reportRepository implements ReportRepository over a RecordStore
type reportRepository struct {
	store outbound.RecordStore
	log   logger.Logger
}

func NewReportRepository(store outbound.RecordStore, log logger.Logger) outbound.ReportRepository {
	return &reportRepository{store: store, log: log}
}

// ForStore returns the store's reports, restricted to the inclusive date
// range when one is given. Without a range no ordering is guaranteed.
func (r *reportRepository) ForStore(ctx context.Context, storeCode string, dateRange *outbound.DateRange) ([]domain.Report, error) {
	recs, err := r.store.Query(ctx, recordTypeReport, reportsForStoreQuery(storeCode, dateRange))
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	reports := make([]domain.Report, 0, len(recs))
	for _, rec := range recs {
		report, ok := reportFromRecord(rec)
		if !ok {
			r.log.Debug(ctx, "dropping unmappable report record", map[string]interface{}{
				"record_id": rec.ID,
			})
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *reportRepository) Get(ctx context.Context, id string) (*domain.Report, error) {
	rec, err := r.store.Fetch(ctx, recordTypeReport, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	report, ok := reportFromRecord(*rec)
	if !ok {
		r.log.Debug(ctx, "fetched report record did not map", map[string]interface{}{
			"record_id": rec.ID,
		})
		return nil, nil
	}
	return &report, nil
}

// Save upserts the report; see templateRepository.Save for the
// reconstruction-fallback contract shared by all repositories.
func (r *reportRepository) Save(ctx context.Context, report domain.Report) (domain.Report, error) {
	saved, err := r.store.Save(ctx, reportToRecord(report))
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to save report: %w", err)
	}
	out, ok := reportFromRecord(saved)
	if !ok {
		r.log.Warn(ctx, "saved report record did not map back, returning caller copy", map[string]interface{}{
			"record_id": saved.ID,
		})
		return report, nil
	}
	return out, nil
}

func (r *reportRepository) Delete(ctx context.Context, report domain.Report) error {
	if report.ID == "" {
		return storeerror.Invalid("delete report", "report has no identifier")
	}
	if err := r.store.Delete(ctx, recordTypeReport, report.ID); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
