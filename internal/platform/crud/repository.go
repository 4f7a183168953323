package crud

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shareregistry/backoffice/internal/platform/db"
)

// PGRepository implements Store on PostgreSQL. Rows are scanned by column
// name into T, so T's fields carry `db` tags matching the schema columns.
type PGRepository[T Record] struct {
	conn   db.DBTX
	schema Schema[T]
}

// NewPGRepository builds a repository for the given schema.
func NewPGRepository[T Record](conn db.DBTX, schema Schema[T]) *PGRepository[T] {
	return &PGRepository[T]{conn: conn, schema: schema}
}

func (r *PGRepository[T]) Store(ctx context.Context, rec T) (T, error) {
	query, args := r.insertQuery(rec)
	return r.queryOne(ctx, "store", query, args...)
}

func (r *PGRepository[T]) UpdateByID(ctx context.Context, id int64, rec T) (T, error) {
	query, args := r.updateQuery(id, rec)
	return r.queryOne(ctx, "update", query, args...)
}

func (r *PGRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	query := `SELECT ` + r.schema.selectList() + ` FROM ` + r.schema.Table + ` WHERE id = $1`
	return r.queryOne(ctx, "find", query, id)
}

// FindByIDs returns the records that exist among ids; missing ids are omitted.
func (r *PGRepository[T]) FindByIDs(ctx context.Context, ids []int64) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	query := `SELECT ` + r.schema.selectList() + ` FROM ` + r.schema.Table +
		` WHERE id = ANY($1) ORDER BY ` + r.schema.orderBy()
	return r.queryMany(ctx, "find many", query, ids)
}

func (r *PGRepository[T]) All(ctx context.Context, filter Filter) ([]T, error) {
	query, args := r.listQuery(filter, 0, 0)
	return r.queryMany(ctx, "all", query, args...)
}

func (r *PGRepository[T]) Paginate(ctx context.Context, limit, offset int, filter Filter) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}
	query, args := r.listQuery(filter, limit, offset)
	return r.queryMany(ctx, "paginate", query, args...)
}

func (r *PGRepository[T]) TotalCount(ctx context.Context, filter Filter) (int, error) {
	where, args := r.where(filter)
	var total int
	err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM `+r.schema.Table+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: count: %w", r.schema.Table, db.Classify(err))
	}
	return total, nil
}

func (r *PGRepository[T]) DeleteByID(ctx context.Context, id int64) (T, error) {
	query := `DELETE FROM ` + r.schema.Table + ` WHERE id = $1 RETURNING ` + r.schema.selectList()
	return r.queryOne(ctx, "delete", query, id)
}

func (r *PGRepository[T]) DeleteManyByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.conn.Exec(ctx, `DELETE FROM `+r.schema.Table+` WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("%s: delete many: %w", r.schema.Table, db.Classify(err))
	}
	return nil
}

func (r *PGRepository[T]) insertQuery(rec T) (string, []any) {
	args := r.schema.Values(rec)
	placeholders := make([]string, len(r.schema.Columns))
	for i := range r.schema.Columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	query := `INSERT INTO ` + r.schema.Table + ` (` + strings.Join(r.schema.Columns, ", ") + `, created_at, updated_at)` +
		` VALUES (` + strings.Join(placeholders, ", ") + `, NOW(), NOW())` +
		` RETURNING ` + r.schema.selectList()
	return query, args
}

// updateQuery rewrites every column except the scope column, which is fixed
// at creation.
func (r *PGRepository[T]) updateQuery(id int64, rec T) (string, []any) {
	values := r.schema.Values(rec)
	sets := make([]string, 0, len(r.schema.Columns)+1)
	args := make([]any, 0, len(values)+1)
	for i, col := range r.schema.Columns {
		if col == r.schema.ScopeColumn {
			continue
		}
		args = append(args, values[i])
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)
	query := `UPDATE ` + r.schema.Table + ` SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + r.schema.selectList()
	return query, args
}

func (r *PGRepository[T]) listQuery(filter Filter, limit, offset int) (string, []any) {
	where, args := r.where(filter)
	query := `SELECT ` + r.schema.selectList() + ` FROM ` + r.schema.Table + where + ` ORDER BY ` + r.schema.orderBy()
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
		if offset < 0 {
			offset = 0
		}
		args = append(args, offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}
	return query, args
}

func (r *PGRepository[T]) where(filter Filter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if filter.ScopeID != nil && r.schema.ScopeColumn != "" {
		args = append(args, *filter.ScopeID)
		clauses = append(clauses, r.schema.ScopeColumn+" = $"+strconv.Itoa(len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" && len(r.schema.SearchColumns) > 0 {
		args = append(args, "%"+escapeLike(search)+"%")
		n := strconv.Itoa(len(args))
		ors := make([]string, len(r.schema.SearchColumns))
		for i, col := range r.schema.SearchColumns {
			ors[i] = "COALESCE(" + col + "::text, '') ILIKE $" + n
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PGRepository[T]) queryOne(ctx context.Context, op, query string, args ...any) (T, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %s: %w", r.schema.Table, op, db.Classify(err))
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %s: %w", r.schema.Table, op, db.Classify(err))
	}
	return rec, nil
}

func (r *PGRepository[T]) queryMany(ctx context.Context, op, query string, args ...any) ([]T, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", r.schema.Table, op, db.Classify(err))
	}
	recs, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", r.schema.Table, op, db.Classify(err))
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

// escapeLike neutralises LIKE wildcards so search is a plain substring match.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
