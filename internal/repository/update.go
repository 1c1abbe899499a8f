package repository

import (
	"fmt"
	"strings"

	"clinicdesk/internal/domain"
)

// touchUpdatedAt always moves updated_at forward, even when the clock has not ticked
// since the previous write.
const touchUpdatedAt = "updated_at = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')"

// updateSet collects the columns of a partial update in a stable order.
type updateSet struct {
	columns []string
	args    []interface{}
}

func (u *updateSet) set(column string, value interface{}) {
	u.args = append(u.args, value)
	u.columns = append(u.columns, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

func setOptional[T any](u *updateSet, column string, o domain.Optional[T]) {
	if o.Set {
		u.set(column, o.Value)
	}
}

// setNullable writes NULL when the field was sent as an explicit null.
func setNullable[T any](u *updateSet, column string, n domain.Nullable[T]) {
	if n.Set {
		u.set(column, n.Value)
	}
}

func (u *updateSet) query(table string, id int64, returning string) (string, []interface{}) {
	columns := make([]string, 0, len(u.columns)+1)
	columns = append(columns, u.columns...)
	columns = append(columns, touchUpdatedAt)

	args := make([]interface{}, 0, len(u.args)+1)
	args = append(args, u.args...)
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(columns, ", "), len(args), returning,
	)
	return query, args
}
