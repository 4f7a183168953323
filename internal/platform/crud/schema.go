// Package crud is the generic store/service/handler stack every registry
// entity is instantiated from.
package crud

import (
	"context"
	"strings"
)

// Record is implemented by every entity stored through crud.
type Record interface {
	RecordID() int64
}

// Schema maps an entity onto its table. Columns lists the writable columns
// in the same order Values returns them; id, created_at and updated_at are
// managed by the table itself.
type Schema[T Record] struct {
	Table         string
	Columns       []string
	Values        func(T) []any
	ScopeColumn   string
	SearchColumns []string
	OrderBy       string
}

func (s Schema[T]) selectList() string {
	cols := make([]string, 0, len(s.Columns)+3)
	cols = append(cols, "id", "created_at", "updated_at")
	cols = append(cols, s.Columns...)
	return strings.Join(cols, ", ")
}

func (s Schema[T]) orderBy() string {
	if s.OrderBy == "" {
		return "id DESC"
	}
	return s.OrderBy
}

// Filter narrows list queries. ScopeID restricts to one parent; Search is a
// case-insensitive substring match over the schema's search columns.
type Filter struct {
	ScopeID *int64
	Search  string
}

// Scoped returns a filter restricted to the given parent id.
func Scoped(id int64) Filter {
	return Filter{ScopeID: &id}
}

// Store is the data-access contract of a single entity.
type Store[T Record] interface {
	Store(ctx context.Context, rec T) (T, error)
	UpdateByID(ctx context.Context, id int64, rec T) (T, error)
	FindByID(ctx context.Context, id int64) (T, error)
	FindByIDs(ctx context.Context, ids []int64) ([]T, error)
	All(ctx context.Context, filter Filter) ([]T, error)
	Paginate(ctx context.Context, limit, offset int, filter Filter) ([]T, error)
	TotalCount(ctx context.Context, filter Filter) (int, error)
	DeleteByID(ctx context.Context, id int64) (T, error)
	DeleteManyByIDs(ctx context.Context, ids []int64) error
}
