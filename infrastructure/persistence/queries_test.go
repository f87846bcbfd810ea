package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
)

// The literal field names and enum values asserted here are the wire
// contract shared with the mappers; changing either side breaks stored data.

func TestActiveTemplatesQuery(t *testing.T) {
	q := activeTemplatesQuery()

	assert.Equal(t, []outbound.Filter{
		{Field: "status", Op: outbound.OpEqual, Value: "PUBLISHED"},
		{Field: "active", Op: outbound.OpEqual, Value: true},
	}, q.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "title"}}, q.Sort)
}

func TestTemplatesForStoreQuery(t *testing.T) {
	q := templatesForStoreQuery("S42")

	assert.Equal(t, []outbound.Filter{
		{Field: "store_codes", Op: outbound.OpContains, Value: "S42"},
		{Field: "status", Op: outbound.OpEqual, Value: "PUBLISHED"},
		{Field: "active", Op: outbound.OpEqual, Value: true},
	}, q.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "priority", Descending: true}}, q.Sort)
}

func TestTemplatesByCategoryQuery(t *testing.T) {
	q := templatesByCategoryQuery(domain.TemplateCategorySafety)

	assert.Equal(t, []outbound.Filter{
		{Field: "category", Op: outbound.OpEqual, Value: "SAFETY"},
		{Field: "active", Op: outbound.OpEqual, Value: true},
	}, q.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "title"}}, q.Sort)
}

func TestAllTemplatesQuery(t *testing.T) {
	q := allTemplatesQuery()

	assert.Empty(t, q.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "created_at", Descending: true}}, q.Sort)
}

func TestInProgressAuditsQuery(t *testing.T) {
	q := inProgressAuditsQuery()

	// "In progress" is the union of in-progress and paused
	assert.Equal(t, []outbound.Filter{
		{Field: "status", Op: outbound.OpIn, Value: []string{"IN_PROGRESS", "PAUSED"}},
	}, q.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "started_at", Descending: true}}, q.Sort)
}

func TestAuditsByTemplateQuery(t *testing.T) {
	q := auditsByTemplateQuery("tmpl-9")

	assert.Equal(t, []outbound.Filter{
		{Field: "template_id", Op: outbound.OpEqual, Value: "tmpl-9"},
	}, q.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "started_at", Descending: true}}, q.Sort)
}

func TestReportsForStoreQuery(t *testing.T) {
	noRange := reportsForStoreQuery("S42", nil)
	assert.Equal(t, []outbound.Filter{
		{Field: "store_code", Op: outbound.OpEqual, Value: "S42"},
	}, noRange.Filters)
	assert.Empty(t, noRange.Sort, "no sort guarantee without a range")

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	ranged := reportsForStoreQuery("S42", &outbound.DateRange{From: from, To: to})
	assert.Equal(t, []outbound.Filter{
		{Field: "store_code", Op: outbound.OpEqual, Value: "S42"},
		{Field: "date", Op: outbound.OpGTE, Value: from},
		{Field: "date", Op: outbound.OpLTE, Value: to},
	}, ranged.Filters)
	assert.Equal(t, []outbound.Sort{{Field: "date"}}, ranged.Sort)
}
