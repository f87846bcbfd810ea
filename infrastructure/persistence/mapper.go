package persistence

import (
	"time"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/domain"
)

// Record types and field names are the wire contract with the remote store.
// The literals written here are the same ones the query builders filter on;
// both sides must stay stable across versions.
const (
	recordTypeTemplate = "audit_template"
	recordTypeAudit    = "store_audit"
	recordTypeReport   = "store_report"

	fieldTitle      = "title"
	fieldCategory   = "category"
	fieldStatus     = "status"
	fieldActive     = "active"
	fieldStoreCodes = "store_codes"
	fieldPriority   = "priority"
	fieldCreatedAt  = "created_at"

	fieldStoreCode  = "store_code"
	fieldTemplateID = "template_id"
	fieldResponses  = "responses"
	fieldStartedAt  = "started_at"
	fieldScore      = "score"
	fieldMaxScore   = "max_score"

	fieldQuestionID = "question_id"
	fieldAnswer     = "answer"
	fieldRecordedAt = "recorded_at"

	fieldDate      = "date"
	fieldSales     = "sales"
	fieldVisitors  = "visitors"
	fieldIncidents = "incidents"
	fieldNotes     = "notes"
)

// templateToRecord is total: it writes every field any template query
// filters or sorts on, using the canonical enumerated literals.
func templateToRecord(t domain.Template) outbound.Record {
	return outbound.Record{
		Type: recordTypeTemplate,
		ID:   t.ID,
		Fields: map[string]any{
			fieldTitle:      t.Title,
			fieldCategory:   string(t.Category),
			fieldStatus:     string(t.Status),
			fieldActive:     t.Active,
			fieldStoreCodes: append([]string(nil), t.StoreCodes...),
			fieldPriority:   t.Priority,
			fieldCreatedAt:  t.CreatedAt,
		},
	}
}

// templateFromRecord reports ok=false when a required field is absent or
// mistyped. Callers skip such records instead of erroring: one malformed
// record in the remote store must not abort a bulk fetch.
func templateFromRecord(rec outbound.Record) (domain.Template, bool) {
	title, ok := stringField(rec.Fields, fieldTitle)
	if !ok {
		return domain.Template{}, false
	}
	category, ok := stringField(rec.Fields, fieldCategory)
	if !ok {
		return domain.Template{}, false
	}
	status, ok := stringField(rec.Fields, fieldStatus)
	if !ok {
		return domain.Template{}, false
	}
	active, ok := boolField(rec.Fields, fieldActive)
	if !ok {
		return domain.Template{}, false
	}
	priority, ok := intField(rec.Fields, fieldPriority)
	if !ok {
		return domain.Template{}, false
	}
	return domain.Template{
		ID:         rec.ID,
		Title:      title,
		Category:   domain.TemplateCategory(category),
		Status:     domain.TemplateStatus(status),
		Active:     active,
		StoreCodes: stringSliceField(rec.Fields, fieldStoreCodes),
		Priority:   priority,
		CreatedAt:  timeField(rec.Fields, fieldCreatedAt),
	}, true
}

func auditToRecord(a domain.Audit) outbound.Record {
	responses := make([]map[string]any, 0, len(a.Responses))
	for _, entry := range a.Responses {
		responses = append(responses, map[string]any{
			fieldQuestionID: entry.QuestionID,
			fieldAnswer:     entry.Answer,
			fieldScore:      entry.Score,
			fieldRecordedAt: entry.RecordedAt,
		})
	}
	return outbound.Record{
		Type: recordTypeAudit,
		ID:   a.ID,
		Fields: map[string]any{
			fieldStoreCode:  a.StoreCode,
			fieldTemplateID: a.TemplateID,
			fieldStatus:     string(a.Status),
			fieldResponses:  responses,
			fieldStartedAt:  a.StartedAt,
			fieldScore:      a.Score,
			fieldMaxScore:   a.MaxScore,
		},
	}
}

func auditFromRecord(rec outbound.Record) (domain.Audit, bool) {
	storeCode, ok := stringField(rec.Fields, fieldStoreCode)
	if !ok {
		return domain.Audit{}, false
	}
	templateID, ok := stringField(rec.Fields, fieldTemplateID)
	if !ok {
		return domain.Audit{}, false
	}
	status, ok := stringField(rec.Fields, fieldStatus)
	if !ok {
		return domain.Audit{}, false
	}
	score, _ := floatField(rec.Fields, fieldScore)
	maxScore, _ := floatField(rec.Fields, fieldMaxScore)
	return domain.Audit{
		ID:         rec.ID,
		StoreCode:  storeCode,
		TemplateID: templateID,
		Status:     domain.AuditStatus(status),
		Responses:  responsesField(rec.Fields, fieldResponses),
		StartedAt:  timeField(rec.Fields, fieldStartedAt),
		Score:      score,
		MaxScore:   maxScore,
	}, true
}

func reportToRecord(r domain.Report) outbound.Record {
	return outbound.Record{
		Type: recordTypeReport,
		ID:   r.ID,
		Fields: map[string]any{
			fieldStoreCode: r.StoreCode,
			fieldDate:      r.Date,
			fieldSales:     r.Sales,
			fieldVisitors:  r.Visitors,
			fieldIncidents: r.Incidents,
			fieldNotes:     r.Notes,
			fieldCreatedAt: r.CreatedAt,
		},
	}
}

func reportFromRecord(rec outbound.Record) (domain.Report, bool) {
	storeCode, ok := stringField(rec.Fields, fieldStoreCode)
	if !ok {
		return domain.Report{}, false
	}
	date := timeField(rec.Fields, fieldDate)
	if date.IsZero() {
		return domain.Report{}, false
	}
	sales, _ := floatField(rec.Fields, fieldSales)
	visitors, _ := intField(rec.Fields, fieldVisitors)
	incidents, _ := intField(rec.Fields, fieldIncidents)
	notes, _ := stringField(rec.Fields, fieldNotes)
	return domain.Report{
		ID:        rec.ID,
		StoreCode: storeCode,
		Date:      date,
		Sales:     sales,
		Visitors:  visitors,
		Incidents: incidents,
		Notes:     notes,
		CreatedAt: timeField(rec.Fields, fieldCreatedAt),
	}, true
}

// Field coercion helpers. Remote records come back loosely typed: numbers may
// decode as int64, uint64 or float64 and lists as []any depending on the
// store codec, so each helper accepts the variants seen on the wire.

func stringField(fields map[string]any, name string) (string, bool) {
	s, ok := fields[name].(string)
	return s, ok
}

func boolField(fields map[string]any, name string) (bool, bool) {
	b, ok := fields[name].(bool)
	return b, ok
}

func intField(fields map[string]any, name string) (int, bool) {
	switch v := fields[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

func floatField(fields map[string]any, name string) (float64, bool) {
	switch v := fields[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func timeField(fields map[string]any, name string) time.Time {
	switch v := fields[name].(type) {
	case time.Time:
		return v
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func stringSliceField(fields map[string]any, name string) []string {
	switch v := fields[name].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func responsesField(fields map[string]any, name string) []domain.ResponseEntry {
	var raw []map[string]any
	switch v := fields[name].(type) {
	case []map[string]any:
		raw = v
	case []any:
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				raw = append(raw, m)
			}
		}
	}
	entries := make([]domain.ResponseEntry, 0, len(raw))
	for _, m := range raw {
		questionID, ok := stringField(m, fieldQuestionID)
		if !ok {
			continue
		}
		answer, _ := stringField(m, fieldAnswer)
		score, _ := floatField(m, fieldScore)
		entries = append(entries, domain.ResponseEntry{
			QuestionID: questionID,
			Answer:     answer,
			Score:      score,
			RecordedAt: timeField(m, fieldRecordedAt),
		})
	}
	return entries
}
