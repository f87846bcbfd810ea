package persistence

import (
	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
)

// RepositoryFactory vends repositories bound to one injected store
// connection. It holds no state beyond the handle; callers may request
// repositories repeatedly and must not rely on instance identity.
type RepositoryFactory struct {
	store outbound.RecordStore
	log   logger.Logger
}

func NewRepositoryFactory(store outbound.RecordStore, log logger.Logger) *RepositoryFactory {
	return &RepositoryFactory{store: store, log: log}
}

func (f *RepositoryFactory) Templates() outbound.TemplateRepository {
	return NewTemplateRepository(f.store, f.log)
}

func (f *RepositoryFactory) Audits() outbound.AuditRepository {
	return NewAuditRepository(f.store, f.log)
}

func (f *RepositoryFactory) Reports() outbound.ReportRepository {
	return NewReportRepository(f.store, f.log)
}
