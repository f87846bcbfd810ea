// Package memory provides an in-process RecordStore used as a test double
// and for running the data layer without a remote store. It evaluates the
// same filter and sort specs the remote adapter translates to SurrealQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storepulse/storepulse/application/port/outbound"
)

// Store is an in-memory RecordStore. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	tables map[string]map[string]map[string]any
	order  map[string][]string
}

func New() *Store {
	return &Store{
		tables: make(map[string]map[string]map[string]any),
		order:  make(map[string][]string),
	}
}

func (s *Store) Query(ctx context.Context, recordType string, query outbound.Query) ([]outbound.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []outbound.Record
	// Iterate in insertion order so unsorted (and tied) results have the
	// stable ordering the remote store exhibits.
	for _, id := range s.order[recordType] {
		fields, ok := s.tables[recordType][id]
		if !ok {
			continue
		}
		if !matches(fields, query.Filters) {
			continue
		}
		records = append(records, outbound.Record{
			Type:   recordType,
			ID:     id,
			Fields: cloneFields(fields),
		})
	}
	sortRecords(records, query.Sort)
	return records, nil
}

func (s *Store) Fetch(ctx context.Context, recordType, id string) (*outbound.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.tables[recordType][id]
	if !ok {
		return nil, nil
	}
	return &outbound.Record{Type: recordType, ID: id, Fields: cloneFields(fields)}, nil
}

func (s *Store) Save(ctx context.Context, record outbound.Record) (outbound.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.ID
	if id == "" {
		id = uuid.NewString()
	}
	if s.tables[record.Type] == nil {
		s.tables[record.Type] = make(map[string]map[string]any)
	}
	if _, exists := s.tables[record.Type][id]; !exists {
		s.order[record.Type] = append(s.order[record.Type], id)
	}
	s.tables[record.Type][id] = cloneFields(record.Fields)
	return outbound.Record{Type: record.Type, ID: id, Fields: cloneFields(record.Fields)}, nil
}

func (s *Store) Delete(ctx context.Context, recordType, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tables[recordType], id)
	return nil
}

func matches(fields map[string]any, filters []outbound.Filter) bool {
	for _, f := range filters {
		if !matchesFilter(fields, f) {
			return false
		}
	}
	return true
}

func matchesFilter(fields map[string]any, f outbound.Filter) bool {
	value, ok := fields[f.Field]
	if !ok {
		return false
	}
	switch f.Op {
	case outbound.OpEqual:
		return equal(value, f.Value)
	case outbound.OpContains:
		for _, item := range toSlice(value) {
			if equal(item, f.Value) {
				return true
			}
		}
		return false
	case outbound.OpIn:
		for _, item := range toSlice(f.Value) {
			if equal(value, item) {
				return true
			}
		}
		return false
	case outbound.OpGTE:
		cmp, ok := compare(value, f.Value)
		return ok && cmp >= 0
	case outbound.OpLTE:
		cmp, ok := compare(value, f.Value)
		return ok && cmp <= 0
	}
	return false
}

func equal(a, b any) bool {
	if cmp, ok := compare(a, b); ok {
		return cmp == 0
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	return false
}

// compare orders two values of the kinds the mappers write: strings,
// numbers and timestamps
func compare(a, b any) (int, bool) {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		}
		return 0, true
	}
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		switch {
		case at.Before(bt):
			return -1, true
		case at.After(bt):
			return 1, true
		}
		return 0, true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func toSlice(v any) []any {
	switch items := v.(type) {
	case []any:
		return items
	case []string:
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out
	}
	return nil
}

func sortRecords(records []outbound.Record, descriptors []outbound.Sort) {
	if len(descriptors) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, d := range descriptors {
			cmp, ok := compare(records[i].Fields[d.Field], records[j].Fields[d.Field])
			if !ok || cmp == 0 {
				continue
			}
			if d.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneFields(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = cloneFields(item)
		}
		return out
	}
	return v
}
