// Package surreal implements the RecordStore boundary against SurrealDB.
//
// SurrealDB is schemaless: tables are created when the first record is
// inserted, so no migration step exists. Queries are parameterized SurrealQL;
// field values are marshaled with the surrealcbor codec so time.Time and
// record identifiers round-trip in the format the server expects.
package surreal

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/pkg/models"
	"github.com/surrealdb/surrealdb.go/surrealcbor"

	"github.com/storepulse/storepulse/application/port/outbound"
	"github.com/storepulse/storepulse/infrastructure/service/logger"
	"github.com/storepulse/storepulse/pkg/storeerror"
)

// Config holds the connection parameters for the remote store
type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Store is a RecordStore backed by a SurrealDB connection. It holds no
// mutable state beyond the connection handle, so it is safe to share.
type Store struct {
	db  *surrealdb.DB
	log logger.Logger
}

// Connect dials the store and selects the namespace and database.
// The surrealcbor codec is set explicitly: the default marshaling does not
// produce the datetime format SurrealDB expects.
func Connect(ctx context.Context, cfg Config, log logger.Logger) (*Store, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store URL: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, storeerror.Transport("connect", err)
	}

	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.Username,
			"pass": cfg.Password,
		}); err != nil {
			return nil, storeerror.Transport("sign in", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, storeerror.Transport("use namespace", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the connection
func (s *Store) Close(ctx context.Context) error {
	return s.db.Close(ctx)
}

func (s *Store) Query(ctx context.Context, recordType string, query outbound.Query) ([]outbound.Record, error) {
	stmt, params := buildSelect(recordType, query)
	s.log.Debug(ctx, "issuing select", map[string]interface{}{"statement": stmt})
	res, err := surrealdb.Query[[]map[string]any](ctx, s.db, stmt, params)
	if err != nil {
		return nil, storeerror.Transport("query "+recordType, err)
	}
	var rows []map[string]any
	if res != nil && len(*res) > 0 {
		rows = (*res)[0].Result
	}
	records := make([]outbound.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(recordType, row))
	}
	return records, nil
}

func (s *Store) Fetch(ctx context.Context, recordType, id string) (*outbound.Record, error) {
	rid := models.RecordID{Table: recordType, ID: id}
	row, err := surrealdb.Select[map[string]any](ctx, s.db, rid)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storeerror.Transport("fetch "+recordType, err)
	}
	if row == nil || len(*row) == 0 {
		return nil, nil
	}
	rec := recordFromRow(recordType, *row)
	return &rec, nil
}

func (s *Store) Save(ctx context.Context, record outbound.Record) (outbound.Record, error) {
	var (
		row *map[string]any
		err error
	)
	if record.ID == "" {
		// First save: let the store assign the record identifier
		row, err = surrealdb.Create[map[string]any](ctx, s.db, record.Type, record.Fields)
	} else {
		rid := models.RecordID{Table: record.Type, ID: record.ID}
		row, err = surrealdb.Update[map[string]any](ctx, s.db, rid, record.Fields)
	}
	if err != nil {
		return outbound.Record{}, storeerror.Transport("save "+record.Type, err)
	}
	if row == nil {
		// The write went through but the round trip returned nothing;
		// hand back what we sent so the caller keeps a usable value.
		return record, nil
	}
	return recordFromRow(record.Type, *row), nil
}

func (s *Store) Delete(ctx context.Context, recordType, id string) error {
	rid := models.RecordID{Table: recordType, ID: id}
	_, err := surrealdb.Delete[map[string]any](ctx, s.db, rid)
	if err != nil && !isNotFound(err) {
		return storeerror.Transport("delete "+recordType, err)
	}
	return nil
}

// recordFromRow lifts the store's id field out of the document body
func recordFromRow(recordType string, row map[string]any) outbound.Record {
	rec := outbound.Record{Type: recordType, Fields: row}
	switch id := row["id"].(type) {
	case models.RecordID:
		rec.ID = fmt.Sprint(id.ID)
	case *models.RecordID:
		rec.ID = fmt.Sprint(id.ID)
	case string:
		rec.ID = id
	}
	delete(row, "id")
	return rec
}

// isNotFound recognizes the driver's empty-result errors so callers can fold
// them into an empty optional instead of a failure
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}
