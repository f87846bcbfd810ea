package surreal

import (
	"fmt"
	"strings"

	"github.com/storepulse/storepulse/application/port/outbound"
)

// buildSelect translates a query spec into a parameterized SurrealQL SELECT.
// Every filter value is bound as a parameter; the only interpolated tokens
// are record types and field names, which are internal constants and never
// caller input.
func buildSelect(recordType string, query outbound.Query) (string, map[string]any) {
	var b strings.Builder
	params := make(map[string]any, len(query.Filters))

	b.WriteString("SELECT * FROM ")
	b.WriteString(recordType)

	for i, f := range query.Filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		name := fmt.Sprintf("p%d", i)
		switch f.Op {
		case outbound.OpContains:
			b.WriteString(f.Field + " CONTAINS $" + name)
		case outbound.OpIn:
			b.WriteString(f.Field + " IN $" + name)
		case outbound.OpGTE:
			b.WriteString(f.Field + " >= $" + name)
		case outbound.OpLTE:
			b.WriteString(f.Field + " <= $" + name)
		default:
			b.WriteString(f.Field + " = $" + name)
		}
		params[name] = f.Value
	}

	for i, s := range query.Sort {
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(s.Field)
		if s.Descending {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
	}

	return b.String(), params
}
