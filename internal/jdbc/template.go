package jdbc

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Youngyoon-1/jwp-dashboard-jdbc/internal/transaction"
)

// Scanner is implemented by *sql.Rows and *sql.Row.
type Scanner interface {
	Scan(dest ...any) error
}

// RowMapper converts the current row into a T.
type RowMapper[T any] func(row Scanner) (T, error)

// Template runs statements against db, or against the transaction bound to
// the call's context when there is one.
type Template struct {
	db *sql.DB
}

// NewTemplate creates a template for db.
func NewTemplate(db *sql.DB) *Template {
	return &Template{db: db}
}

func (t *Template) querier(ctx context.Context) transaction.Querier {
	return transaction.QuerierFrom(ctx, t.db)
}

// Update executes an INSERT, UPDATE or DELETE and returns the rows affected.
func (t *Template) Update(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := t.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapSQLiteError(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// Insert executes an INSERT and returns the generated row ID.
func (t *Template) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := t.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapSQLiteError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

// Query runs query and maps every row with mapper.
func Query[T any](ctx context.Context, t *Template, mapper RowMapper[T], query string, args ...any) ([]T, error) {
	rows, err := t.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer func() { _ = rows.Close() }()

	var results []T
	for rows.Next() {
		v, err := mapper(rows)
		if err != nil {
			return nil, fmt.Errorf("map row: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}
	return results, nil
}

// QueryForObject runs query and returns its single row.
// It fails with ErrNoMatchingRecord or *AmbiguousRecordCountError when the
// query does not return exactly one row.
func QueryForObject[T any](ctx context.Context, t *Template, mapper RowMapper[T], query string, args ...any) (T, error) {
	results, err := Query(ctx, t, mapper, query, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return SingleResult(results)
}

// mapSQLiteError converts SQLite errors to the package's error values.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return fmt.Errorf("%w: %s", ErrDuplicate, errStr)
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return fmt.Errorf("%w: %s", ErrConstraint, errStr)
	}
	return err
}
