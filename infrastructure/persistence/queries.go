package persistence

import (
	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
)

// Query builders translate each named access pattern into a filter predicate
// plus sort order. They are pure functions of their parameters; the field
// names and enumerated literals match what the mappers write.

func allTemplatesQuery() outbound.Query {
	return outbound.Query{
		Sort: []outbound.Sort{{Field: fieldCreatedAt, Descending: true}},
	}
}

func activeTemplatesQuery() outbound.Query {
	return outbound.Query{
		Filters: []outbound.Filter{
			{Field: fieldStatus, Op: outbound.OpEqual, Value: string(domain.TemplateStatusPublished)},
			{Field: fieldActive, Op: outbound.OpEqual, Value: true},
		},
		Sort: []outbound.Sort{{Field: fieldTitle}},
	}
}

func templatesByCategoryQuery(category domain.TemplateCategory) outbound.Query {
	return outbound.Query{
		Filters: []outbound.Filter{
			{Field: fieldCategory, Op: outbound.OpEqual, Value: string(category)},
			{Field: fieldActive, Op: outbound.OpEqual, Value: true},
		},
		Sort: []outbound.Sort{{Field: fieldTitle}},
	}
}

// templatesForStoreQuery drives which templates a field user sees at their
// location. Ties on priority fall back to the store's stable ordering.
func templatesForStoreQuery(storeCode string) outbound.Query {
	return outbound.Query{
		Filters: []outbound.Filter{
			{Field: fieldStoreCodes, Op: outbound.OpContains, Value: storeCode},
			{Field: fieldStatus, Op: outbound.OpEqual, Value: string(domain.TemplateStatusPublished)},
			{Field: fieldActive, Op: outbound.OpEqual, Value: true},
		},
		Sort: []outbound.Sort{{Field: fieldPriority, Descending: true}},
	}
}

func allAuditsQuery() outbound.Query {
	return outbound.Query{
		Sort: []outbound.Sort{{Field: fieldStartedAt, Descending: true}},
	}
}

func auditsByTemplateQuery(templateID string) outbound.Query {
	return outbound.Query{
		Filters: []outbound.Filter{
			{Field: fieldTemplateID, Op: outbound.OpEqual, Value: templateID},
		},
		Sort: []outbound.Sort{{Field: fieldStartedAt, Descending: true}},
	}
}

func auditsByStatusQuery(statuses ...domain.AuditStatus) outbound.Query {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return outbound.Query{
		Filters: []outbound.Filter{
			{Field: fieldStatus, Op: outbound.OpIn, Value: values},
		},
		Sort: []outbound.Sort{{Field: fieldStartedAt, Descending: true}},
	}
}

func inProgressAuditsQuery() outbound.Query {
	return auditsByStatusQuery(domain.AuditStatusInProgress, domain.AuditStatusPaused)
}

func reportsForStoreQuery(storeCode string, dateRange *outbound.DateRange) outbound.Query {
	q := outbound.Query{
		Filters: []outbound.Filter{
			{Field: fieldStoreCode, Op: outbound.OpEqual, Value: storeCode},
		},
	}
	if dateRange != nil {
		q.Filters = append(q.Filters,
			outbound.Filter{Field: fieldDate, Op: outbound.OpGTE, Value: dateRange.From},
			outbound.Filter{Field: fieldDate, Op: outbound.OpLTE, Value: dateRange.To},
		)
		q.Sort = []outbound.Sort{{Field: fieldDate}}
	}
	return q
}
