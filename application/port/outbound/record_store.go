package outbound

import (
	"context"
	"time"
)

// Record is the store's loosely-typed representation of a persisted entity:
// a record type, the store-assigned identifier and a bag of named fields.
// Field names and enumerated string values are a wire contract between the
// entity mappers and the store and must stay stable across versions.
type Record struct {
	Type   string
	ID     string
	Fields map[string]any
}

// Op is a filter comparison operator
type Op string

const (
	// OpEqual matches records whose field equals the value
	OpEqual Op = "="
	// OpContains matches records whose list field contains the value
	OpContains Op = "CONTAINS"
	// OpIn matches records whose field is one of the values in a slice
	OpIn Op = "IN"
	// OpGTE matches records whose field is >= the value
	OpGTE Op = ">="
	// OpLTE matches records whose field is <= the value
	OpLTE Op = "<="
)

// Filter is a single field condition. Filters in a Query are conjoined (AND).
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Sort is a single sort descriptor
type Sort struct {
	Field      string
	Descending bool
}

// Query is a filter predicate plus sort order for a bulk fetch.
// It is pure data; building one performs no network access.
type Query struct {
	Filters []Filter
	Sort    []Sort
}

// DateRange is an inclusive date interval
type DateRange struct {
	From time.Time
	To   time.Time
}

// RecordStore is the boundary to the remote document store. Implementations
// issue exactly one remote request per call and propagate transport failures
// unchanged. A missing record is reported as a nil record, not an error.
//
// The store is eventually consistent and performs no conflict detection:
// overlapping writes to the same record are last-write-wins.
type RecordStore interface {
	// Query returns all records of the given type matching the query
	Query(ctx context.Context, recordType string, query Query) ([]Record, error)

	// Fetch retrieves a single record by identifier, nil when absent
	Fetch(ctx context.Context, recordType, id string) (*Record, error)

	// Save upserts the record. A record with an empty ID is created and the
	// returned record carries the store-assigned identifier.
	Save(ctx context.Context, record Record) (Record, error)

	// Delete removes the record by identifier. Deleting an absent record
	// is not an error.
	Delete(ctx context.Context, recordType, id string) error
}
