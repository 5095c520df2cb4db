package cassandracrud

import (
	"reflect"
	"strings"

	"github.com/cervantes79/cassandracrud/types"
)

// Statement builders translate CRUD intents into parameterized CQL text.
// Column order is always the sorted key order of the input mapping, so the
// same logical input produces byte-identical statements.

// buildInsert returns an INSERT statement for the given column set.
func buildInsert(table string, keys []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(strings.Join(keys, ", "))
	b.WriteString(") VALUES (")
	for i := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("?")
	}
	b.WriteString(")")

	return b.String()
}

// buildSelect returns a SELECT statement and its bound parameters.
//
// A condition whose value is a slice or array (other than []byte) becomes a
// membership test, `col IN ?`, with the whole sequence bound as one
// parameter. All other conditions are equality tests. Conditions are
// conjoined with AND; this layer performs no validation of Cassandra's
// WHERE-clause restrictions and lets the server reject invalid filters.
func buildSelect(table string, columns []string, conditions types.Record) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(table)

	params := appendWhere(&b, conditions)

	return b.String(), params
}

// buildUpdate returns an UPDATE statement and its bound parameters, data
// values first, condition values after.
func buildUpdate(table string, data, conditions types.Record) (string, []any) {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")

	params := make([]any, 0, len(data)+len(conditions))
	for i, key := range data.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString(" = ?")
		params = append(params, data[key])
	}

	params = append(params, appendWhere(&b, conditions)...)

	return b.String(), params
}

// buildDelete returns a DELETE statement and its bound parameters.
func buildDelete(table string, conditions types.Record) (string, []any) {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(table)

	params := appendWhere(&b, conditions)

	return b.String(), params
}

// appendWhere appends a WHERE clause for the conditions (if any) and returns
// the bound parameters in clause order.
func appendWhere(b *strings.Builder, conditions types.Record) []any {
	if len(conditions) == 0 {
		return nil
	}

	b.WriteString(" WHERE ")
	params := make([]any, 0, len(conditions))
	for i, key := range conditions.Keys() {
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(key)

		value := conditions[key]
		if isSequence(value) {
			b.WriteString(" IN ?")
		} else {
			b.WriteString(" = ?")
		}
		params = append(params, value)
	}

	return params
}

// isSequence reports whether the value should be treated as an IN-list.
// []byte is excluded: it is a CQL blob, not a membership test.
func isSequence(v any) bool {
	if _, isBytes := v.([]byte); isBytes {
		return false
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
