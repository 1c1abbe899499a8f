package repository

import (
	"context"
	"fmt"
)

func deleteByID(ctx context.Context, db ExtHandle, table string, id int64) (bool, error) {
	res, err := db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
