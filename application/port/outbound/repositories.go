package outbound

import (
	"context"

	"github.com/storepulse/storepulse/domain"
)

// TemplateRepository defines the interface for audit template persistence.
//
// Every method is a single round trip to the remote store. Bulk fetches drop
// records that fail mapping rather than erroring; they fail wholesale only on
// a transport error. Lifecycle methods apply the entity's pure transition and
// persist the result, returning the new entity value.
type TemplateRepository interface {
	// All retrieves every template, newest first
	All(ctx context.Context) ([]domain.Template, error)

	// Active retrieves published, active templates sorted by title
	Active(ctx context.Context) ([]domain.Template, error)

	// ByCategory retrieves active templates in a category sorted by title
	ByCategory(ctx context.Context, category domain.TemplateCategory) ([]domain.Template, error)

	// ForStore retrieves the published, active templates rolled out to a
	// store, highest priority first
	ForStore(ctx context.Context, storeCode string) ([]domain.Template, error)

	// Get retrieves a template by ID, nil when the ID does not resolve
	Get(ctx context.Context, id string) (*domain.Template, error)

	// Save upserts the template and returns the stored value
	Save(ctx context.Context, template domain.Template) (domain.Template, error)

	// Delete removes the persisted template
	Delete(ctx context.Context, template domain.Template) error

	// Publish transitions the template to published and persists it
	Publish(ctx context.Context, template domain.Template) (domain.Template, error)

	// Archive retires the template and persists it
	Archive(ctx context.Context, template domain.Template) (domain.Template, error)
}

// AuditRepository defines the interface for store audit persistence
type AuditRepository interface {
	// All retrieves every audit, most recently started first
	All(ctx context.Context) ([]domain.Audit, error)

	// ByTemplate retrieves audits created from a template, newest first
	ByTemplate(ctx context.Context, templateID string) ([]domain.Audit, error)

	// ByStatus retrieves audits whose status is one of the given set
	ByStatus(ctx context.Context, statuses ...domain.AuditStatus) ([]domain.Audit, error)

	// InProgress retrieves audits that are in progress or paused
	InProgress(ctx context.Context) ([]domain.Audit, error)

	// Get retrieves an audit by ID, nil when the ID does not resolve
	Get(ctx context.Context, id string) (*domain.Audit, error)

	// Save upserts the audit and returns the stored value
	Save(ctx context.Context, audit domain.Audit) (domain.Audit, error)

	// Delete removes the persisted audit
	Delete(ctx context.Context, audit domain.Audit) error

	// Start begins the audit and persists it
	Start(ctx context.Context, audit domain.Audit) (domain.Audit, error)

	// Pause suspends the audit and persists it
	Pause(ctx context.Context, audit domain.Audit) (domain.Audit, error)

	// Resume continues a paused audit and persists it
	Resume(ctx context.Context, audit domain.Audit) (domain.Audit, error)

	// Submit hands the audit in and persists it
	Submit(ctx context.Context, audit domain.Audit) (domain.Audit, error)

	// Complete finishes the audit with the given score pair and persists it
	Complete(ctx context.Context, audit domain.Audit, finalScore, maxScore float64) (domain.Audit, error)

	// AddResponse appends a response entry and persists the audit
	AddResponse(ctx context.Context, audit domain.Audit, entry domain.ResponseEntry) (domain.Audit, error)
}

// ReportRepository defines the interface for store report persistence
type ReportRepository interface {
	// ForStore retrieves reports for a store, restricted to the inclusive
	// date range when one is given
	ForStore(ctx context.Context, storeCode string, dateRange *DateRange) ([]domain.Report, error)

	// Get retrieves a report by ID, nil when the ID does not resolve
	Get(ctx context.Context, id string) (*domain.Report, error)

	// Save upserts the report and returns the stored value
	Save(ctx context.Context, report domain.Report) (domain.Report, error)

	// Delete removes the persisted report
	Delete(ctx context.Context, report domain.Report) error
}
