package content

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/barwaaqo-agri/be-site-backend/pkg/logger"
)

// Item is one member of a fully-submitted admin collection. Rows already in
// storage carry their id; rows the operator just added carry nil.
type Item interface {
	// ItemID returns the persisted row id, or nil for a new row.
	ItemID() *int64
	// Fields returns the editable columns for this item. The map must never
	// contain id or created_at; display_order is always present.
	Fields() map[string]interface{}
}

// ReconcileCollection makes the rows of table match the submitted collection
// exactly: rows whose id is absent from the submission are deleted, rows with
// an id are updated, rows without one are inserted with active set. The whole
// sequence runs on the caller's transaction, so a failure at any step rolls
// back every sibling change.
func ReconcileCollection[T Item](tx *sqlx.Tx, table string, items []T) error {
	retained := make([]int64, 0, len(items))
	for _, item := range items {
		if id := item.ItemID(); id != nil {
			retained = append(retained, *id)
		}
	}

	// Delete everything the operator removed. An empty submission clears
	// the collection.
	if len(retained) == 0 {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	} else {
		query, args, err := sqlx.In("DELETE FROM "+table+" WHERE id NOT IN (?)", retained)
		if err != nil {
			return fmt.Errorf("build delete for %s: %w", table, err)
		}
		if _, err := tx.Exec(tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}

	inserted := 0
	for _, item := range items {
		fields := item.Fields()
		if id := item.ItemID(); id != nil {
			query, args := buildUpdate(table, fields, *id)
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("update %s id=%d: %w", table, *id, err)
			}
		} else {
			query, args := buildInsert(table, fields)
			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("insert into %s: %w", table, err)
			}
			inserted++
		}
	}

	logger.Get().WithComponent("content").Debug("Collection reconciled",
		logger.Table(table),
		logger.Kept(len(retained)),
		logger.Inserted(inserted),
	)
	return nil
}

// UpsertSingleton maintains a singleton header row: when an active row exists
// it is updated in place, otherwise exactly one row is inserted. Returns the
// row id. Never both inserts and updates, so a second active row cannot appear.
func UpsertSingleton(tx *sqlx.Tx, table string, fields map[string]interface{}) (int64, error) {
	var id int64
	err := tx.Get(&id, "SELECT id FROM "+table+" WHERE active = 1 ORDER BY id LIMIT 1")
	if err == nil {
		query, args := buildUpdate(table, fields, id)
		if _, err := tx.Exec(query, args...); err != nil {
			return 0, fmt.Errorf("update %s id=%d: %w", table, id, err)
		}
		return id, nil
	}
	if !isNoRows(err) {
		return 0, fmt.Errorf("lookup %s singleton: %w", table, err)
	}

	query, args := buildInsert(table, fields)
	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert into %s: %w", table, err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read %s insert id: %w", table, err)
	}
	return newID, nil
}

// buildUpdate renders "UPDATE t SET a = ?, b = ?, updated_at = ... WHERE id = ?"
// with columns in sorted order so generated SQL is deterministic.
func buildUpdate(table string, fields map[string]interface{}, id int64) (string, []interface{}) {
	cols := sortedColumns(fields)

	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+1)
	for _, col := range cols {
		sets = append(sets, col+" = ?")
		args = append(args, fields[col])
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	return "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}

// buildInsert renders the insert for a new row. New rows are always visible
// unless the caller set active explicitly.
func buildInsert(table string, fields map[string]interface{}) (string, []interface{}) {
	if _, ok := fields["active"]; !ok {
		fields = withActive(fields)
	}
	cols := sortedColumns(fields)

	placeholders := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		placeholders = append(placeholders, "?")
		args = append(args, fields[col])
	}

	query := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") +
		", created_at, updated_at) VALUES (" + strings.Join(placeholders, ", ") +
		", CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"
	return query, args
}

func withActive(fields map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["active"] = 1
	return out
}

func sortedColumns(fields map[string]interface{}) []string {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
