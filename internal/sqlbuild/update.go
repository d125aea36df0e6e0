// Package sqlbuild assembles the dynamic UPDATE statement used for partial
// product edits. Column names are fixed by the caller at compile time; only
// bind values ever come from request input.
package sqlbuild

import (
	"errors"
	"strings"
)

// ErrNoFields signals that no candidate field carried a present value, so
// no UPDATE should be issued at all.
var ErrNoFields = errors.New("no fields to update")

// Field pairs a hardcoded column identifier with its candidate value.
type Field struct {
	Column string
	Value  any
}

// PartialUpdate builds the minimal SET clause for the fields whose value is
// present, keeping clause order and bind-value order index-aligned in field
// declaration order. The entity id is appended as the final bind value for
// the trailing WHERE id = ?.
func PartialUpdate(table string, id int64, fields []Field) (string, []any, error) {
	clauses := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)

	for _, f := range fields {
		if !present(f.Value) {
			continue
		}

		clauses = append(clauses, f.Column+" = ?")
		args = append(args, f.Value)
	}

	if len(clauses) == 0 {
		return "", nil, ErrNoFields
	}

	query := "UPDATE " + table + " SET " + strings.Join(clauses, ", ") + " WHERE id = ?"
	args = append(args, id)

	return query, args, nil
}

// present implements the compatibility truthiness rule: empty strings and
// numeric zeros count as "not provided" and are skipped, so a client cannot
// set stock to 0 or descripcion to "" through a partial update.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case *string:
		return x != nil && *x != ""
	case int64:
		return x != 0
	case int:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
