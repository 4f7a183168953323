// Package crudtest provides an in-memory crud.Store for tests.
package crudtest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

// Options describe how the memory store reads and writes a record.
type Options[T crud.Record] struct {
	SetID func(*T, int64)
	// ScopeOf returns the parent id; nil for unscoped records.
	ScopeOf func(T) int64
	// SetScope is used by UpdateByID to keep the stored scope.
	SetScope func(*T, int64)
	// Text returns the searchable text columns.
	Text func(T) []string
	// Less orders listings; defaults to id descending.
	Less func(a, b T) bool
}

// Memory is a goroutine-safe crud.Store backed by a map.
type Memory[T crud.Record] struct {
	mu     sync.Mutex
	opts   Options[T]
	rows   map[int64]T
	nextID int64

	// Err, when set, is returned by every call.
	Err error
}

// NewMemory builds an empty store.
func NewMemory[T crud.Record](opts Options[T]) *Memory[T] {
	if opts.Less == nil {
		opts.Less = func(a, b T) bool { return a.RecordID() > b.RecordID() }
	}
	return &Memory[T]{opts: opts, rows: map[int64]T{}, nextID: 1}
}

func (m *Memory[T]) Store(_ context.Context, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		var zero T
		return zero, m.Err
	}
	m.opts.SetID(&rec, m.nextID)
	m.rows[m.nextID] = rec
	m.nextID++
	return rec, nil
}

func (m *Memory[T]) UpdateByID(_ context.Context, id int64, rec T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	old, ok := m.rows[id]
	if !ok {
		return zero, httpx.ErrNotFound
	}
	m.opts.SetID(&rec, id)
	if m.opts.SetScope != nil && m.opts.ScopeOf != nil {
		m.opts.SetScope(&rec, m.opts.ScopeOf(old))
	}
	m.rows[id] = rec
	return rec, nil
}

func (m *Memory[T]) FindByID(_ context.Context, id int64) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	rec, ok := m.rows[id]
	if !ok {
		return zero, httpx.ErrNotFound
	}
	return rec, nil
}

func (m *Memory[T]) FindByIDs(_ context.Context, ids []int64) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []T{}
	for _, id := range crud.UniqueIDs(ids) {
		if rec, ok := m.rows[id]; ok {
			out = append(out, rec)
		}
	}
	m.sort(out)
	return out, nil
}

func (m *Memory[T]) All(_ context.Context, filter crud.Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.filtered(filter), nil
}

func (m *Memory[T]) Paginate(_ context.Context, limit, offset int, filter crud.Filter) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	all := m.filtered(filter)
	if limit <= 0 || offset >= len(all) {
		return []T{}, nil
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return append([]T{}, all[offset:end]...), nil
}

func (m *Memory[T]) TotalCount(_ context.Context, filter crud.Filter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.filtered(filter)), nil
}

func (m *Memory[T]) DeleteByID(_ context.Context, id int64) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if m.Err != nil {
		return zero, m.Err
	}
	rec, ok := m.rows[id]
	if !ok {
		return zero, httpx.ErrNotFound
	}
	delete(m.rows, id)
	return rec, nil
}

func (m *Memory[T]) DeleteManyByIDs(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, id := range ids {
		delete(m.rows, id)
	}
	return nil
}

// Len returns the number of stored records.
func (m *Memory[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *Memory[T]) filtered(filter crud.Filter) []T {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := []T{}
	for _, rec := range m.rows {
		if filter.ScopeID != nil && m.opts.ScopeOf != nil && m.opts.ScopeOf(rec) != *filter.ScopeID {
			continue
		}
		if search != "" && !m.matches(rec, search) {
			continue
		}
		out = append(out, rec)
	}
	m.sort(out)
	return out
}

func (m *Memory[T]) matches(rec T, search string) bool {
	if m.opts.Text == nil {
		return false
	}
	for _, s := range m.opts.Text(rec) {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func (m *Memory[T]) sort(items []T) {
	sort.Slice(items, func(i, j int) bool { return items[i].RecordID() < items[j].RecordID() })
	sort.SliceStable(items, func(i, j int) bool { return m.opts.Less(items[i], items[j]) })
}
