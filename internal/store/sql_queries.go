package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ai-one-api/migrations"
	"github.com/MKhiriev/ai-one-api/models"
)

var (
	contactColumns = []string{
		"id", "full_name", "profession", "phone_number", "email", "address",
		"organization", "birth_date", "tags", "notes", "created_at", "updated_at",
	}
	noteColumns = []string{
		"id", "title", "subtitle", "content", "folders", "tags", "created_at", "updated_at",
	}
	credentialColumns = []string{
		"id", "site_name", "username", "password_sealed", "other_info_sealed",
		"category", "created_at", "updated_at",
	}
	taskColumns = []string{
		"id", "title", "starts_at", "ends_at", "description", "priority",
		"status", "created_at", "updated_at",
	}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// setClause is one "column = value" pair of an UPDATE. A slice of them keeps
// the SET order stable, unlike squirrel's SetMap.
type setClause struct {
	column string
	value  any
}

// setIfPresent appends column = *value when value is non-nil.
func setIfPresent[T any](clauses []setClause, column string, value *T) []setClause {
	if value == nil {
		return clauses
	}
	return append(clauses, setClause{column: column, value: *value})
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) buildInsertQuery(table string, columns []string, values []any, result []string) (string, []any, error) {
	query, args, err := db.builder.
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix(returning(result)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildGetQuery(table string, columns []string, id int64) (string, []any, error) {
	query, args, err := db.builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// listSpec lists the columns a record kind can be searched and sorted by.
type listSpec struct {
	searchable []string
	sortable   []string
}

var (
	contactListSpec = listSpec{
		searchable: []string{"full_name", "email", "profession", "organization"},
		sortable:   []string{"full_name", "email", "profession", "organization", "birth_date", "created_at", "updated_at"},
	}
	noteListSpec = listSpec{
		searchable: []string{"title", "subtitle", "content", "folders"},
		sortable:   []string{"title", "subtitle", "created_at", "updated_at"},
	}
	// sealed columns are never searched or sorted
	credentialListSpec = listSpec{
		searchable: []string{"site_name", "username", "category"},
		sortable:   []string{"site_name", "username", "category", "created_at", "updated_at"},
	}
	taskListSpec = listSpec{
		searchable: []string{"title", "description", "priority", "status"},
		sortable:   []string{"title", "starts_at", "ends_at", "priority", "status", "created_at", "updated_at"},
	}
)

// filter is the search condition of page, nil when no term is given.
// PostgreSQL matches case-insensitively with ILIKE; SQLite's LIKE already
// ignores ASCII case.
func (db *DB) filter(spec listSpec, page models.Page) sq.Sqlizer {
	term := strings.TrimSpace(page.Search)
	if term == "" || len(spec.searchable) == 0 {
		return nil
	}

	pattern := "%" + term + "%"
	or := make(sq.Or, 0, len(spec.searchable))
	for _, column := range spec.searchable {
		if db.dialect == migrations.Postgres {
			or = append(or, sq.ILike{column: pattern})
		} else {
			or = append(or, sq.Like{column: pattern})
		}
	}
	return or
}

// orderBy returns the ORDER BY terms of page. A sort column other than id is
// followed by id so that equal values keep a stable order.
func (spec listSpec) orderBy(page models.Page) ([]string, error) {
	dir := ""
	if page.OrderDir == models.SortDesc {
		dir = " DESC"
	}

	if page.OrderBy == "" || page.OrderBy == "id" {
		return []string{"id" + dir}, nil
	}
	if !slices.Contains(spec.sortable, page.OrderBy) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortColumn, page.OrderBy)
	}

	if dir == "" {
		dir = " ASC"
	}
	return []string{page.OrderBy + dir, "id"}, nil
}

func (db *DB) buildListQuery(table string, columns []string, spec listSpec, page models.Page) (string, []any, error) {
	limit := page.Limit
	if limit == 0 {
		limit = models.DefaultPageLimit
	}

	order, err := spec.orderBy(page)
	if err != nil {
		return "", nil, err
	}

	builder := db.builder.
		Select(columns...).
		From(table)
	if where := db.filter(spec, page); where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.
		OrderBy(order...).
		Limit(limit).
		Offset(page.Skip).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildCountQuery counts the records matching the search term of page.
func (db *DB) buildCountQuery(table string, spec listSpec, page models.Page) (string, []any, error) {
	builder := db.builder.
		Select("COUNT(*)").
		From(table)
	if where := db.filter(spec, page); where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateQuery builds an UPDATE of id that always stamps updated_at
// followed by clauses in order.
func (db *DB) buildUpdateQuery(table string, id int64, clauses []setClause, result []string) (string, []any, error) {
	builder := db.builder.
		Update(table).
		Set("updated_at", db.now())

	for _, c := range clauses {
		builder = builder.Set(c.column, c.value)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix(returning(result)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteQuery(table string, id int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// queryList runs a SELECT and scans every row with scan.
func queryList[T any](ctx context.Context, db *DB, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	var results []T

	err := db.withRetry(ctx, func() error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		results = make([]T, 0, 16)
		for rows.Next() {
			item, scanErr := scan(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			results = append(results, item)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// countRows runs the count query of table for page.
func countRows(ctx context.Context, db *DB, table string, spec listSpec, page models.Page) (uint64, error) {
	query, args, err := db.buildCountQuery(table, spec, page)
	if err != nil {
		return 0, err
	}

	var total int64
	err = db.withRetry(ctx, func() error {
		return db.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return uint64(total), nil
}

// deleteByID runs a DELETE and maps zero affected rows to notFound.
func deleteByID(ctx context.Context, db *DB, table string, id int64, notFound error) error {
	query, args, err := db.buildDeleteQuery(table, id)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
