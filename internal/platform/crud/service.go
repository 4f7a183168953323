package crud

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/shareregistry/backoffice/internal/platform/httpx"
)

// LookupFunc reports which of ids have no record.
type LookupFunc func(ctx context.Context, ids []int64) ([]int64, error)

// MissingIn builds a LookupFunc backed by a store.
func MissingIn[T Record](store Store[T]) LookupFunc {
	return func(ctx context.Context, ids []int64) ([]int64, error) {
		ids = UniqueIDs(ids)
		if len(ids) == 0 {
			return nil, nil
		}
		found, err := store.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		present := make(map[int64]struct{}, len(found))
		for _, rec := range found {
			present[rec.RecordID()] = struct{}{}
		}
		var missing []int64
		for _, id := range ids {
			if _, ok := present[id]; !ok {
				missing = append(missing, id)
			}
		}
		return missing, nil
	}
}

// Reference is a foreign-key style existence check on a payload. The scope
// reference is only checked on create since the scope never changes.
type Reference[P any] struct {
	Field    string
	Resource string
	Scope    bool
	IDs      func(P) []int64
	Missing  LookupFunc
}

// Definition is everything that distinguishes one entity from another.
type Definition[T Record, P any] struct {
	// Resource is the display name used in messages.
	Resource string
	// Normalize cleans a payload (trimming, casing) before it is validated,
	// so Build stores exactly what was checked.
	Normalize func(*P)
	// Build converts a validated payload into a record.
	Build func(P) T
	// SetScope and ScopeOf are nil for unscoped entities.
	SetScope func(*P, int64)
	ScopeOf  func(T) int64

	References []Reference[P]
	ListHook   func(ctx context.Context, items []T) error
	DetailHook func(ctx context.Context, item *T) error
}

// Scoped reports whether the entity belongs to a parent.
func (d Definition[T, P]) Scoped() bool {
	return d.SetScope != nil
}

// Service validates payloads, checks references and delegates to the store.
type Service[T Record, P any] struct {
	store    Store[T]
	def      Definition[T, P]
	validate *validator.Validate
}

// NewService builds a Service.
func NewService[T Record, P any](store Store[T], def Definition[T, P]) *Service[T, P] {
	return &Service[T, P]{store: store, def: def, validate: NewValidator()}
}

// Definition exposes the entity definition.
func (s *Service[T, P]) Definition() Definition[T, P] {
	return s.def
}

// List returns one page and the total count for the filter.
func (s *Service[T, P]) List(ctx context.Context, page, limit int, filter Filter) (Page[T], error) {
	total, err := s.store.TotalCount(ctx, filter)
	if err != nil {
		return Page[T]{}, err
	}
	p := NewPagination(page, limit, total)
	items, err := s.store.Paginate(ctx, p.Limit, p.Offset(), filter)
	if err != nil {
		return Page[T]{}, err
	}
	if err := s.runListHook(ctx, items); err != nil {
		return Page[T]{}, err
	}
	return Page[T]{Items: items, Pagination: p}, nil
}

// All returns every record matching the filter.
func (s *Service[T, P]) All(ctx context.Context, filter Filter) ([]T, error) {
	items, err := s.store.All(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.runListHook(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns a single hydrated record.
func (s *Service[T, P]) Get(ctx context.Context, id int64) (T, error) {
	rec, err := s.find(ctx, id)
	if err != nil {
		return rec, err
	}
	if s.def.DetailHook != nil {
		if err := s.def.DetailHook(ctx, &rec); err != nil {
			var zero T
			return zero, err
		}
	}
	return rec, nil
}

// Create validates the payload, checks its references and stores it.
func (s *Service[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var zero T
	s.normalize(&payload)
	if err := s.Validate(payload); err != nil {
		return zero, err
	}
	if err := s.CheckReferences(ctx, payload, false); err != nil {
		return zero, err
	}
	return s.store.Store(ctx, s.def.Build(payload))
}

// Update replaces every non-scope field of an existing record.
func (s *Service[T, P]) Update(ctx context.Context, id int64, payload P) (T, error) {
	existing, err := s.find(ctx, id)
	if err != nil {
		return existing, err
	}
	var zero T
	if s.def.Scoped() && s.def.ScopeOf != nil {
		s.def.SetScope(&payload, s.def.ScopeOf(existing))
	}
	s.normalize(&payload)
	if err := s.Validate(payload); err != nil {
		return zero, err
	}
	if err := s.CheckReferences(ctx, payload, true); err != nil {
		return zero, err
	}
	rec, err := s.store.UpdateByID(ctx, id, s.def.Build(payload))
	if errors.Is(err, httpx.ErrNotFound) {
		return zero, s.notFound(id)
	}
	return rec, err
}

// Delete removes a record and returns it.
func (s *Service[T, P]) Delete(ctx context.Context, id int64) (T, error) {
	if id <= 0 {
		var zero T
		return zero, httpx.NewValidationError("id", "must be a positive integer")
	}
	rec, err := s.store.DeleteByID(ctx, id)
	if errors.Is(err, httpx.ErrNotFound) {
		return rec, s.notFound(id)
	}
	return rec, err
}

// DeleteMany removes every listed record; ids without a record are ignored.
func (s *Service[T, P]) DeleteMany(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return httpx.NewValidationError("id", "is required")
	}
	for _, id := range ids {
		if id <= 0 {
			return httpx.NewValidationError("id", "must contain only positive integers")
		}
	}
	return s.store.DeleteManyByIDs(ctx, UniqueIDs(ids))
}

// Validate runs shape validation only; it never touches the store.
func (s *Service[T, P]) Validate(payload P) error {
	return ValidateStruct(s.validate, payload)
}

// CheckReferences resolves every referenced id against its store.
func (s *Service[T, P]) CheckReferences(ctx context.Context, payload P, update bool) error {
	for _, ref := range s.def.References {
		if update && ref.Scope {
			continue
		}
		missing, err := ref.Missing(ctx, ref.IDs(payload))
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &httpx.NotFoundError{Field: ref.Field, Resource: ref.Resource, IDs: missing}
		}
	}
	return nil
}

func (s *Service[T, P]) find(ctx context.Context, id int64) (T, error) {
	if id <= 0 {
		var zero T
		return zero, httpx.NewValidationError("id", "must be a positive integer")
	}
	rec, err := s.store.FindByID(ctx, id)
	if errors.Is(err, httpx.ErrNotFound) {
		return rec, s.notFound(id)
	}
	return rec, err
}

func (s *Service[T, P]) normalize(payload *P) {
	if s.def.Normalize != nil {
		s.def.Normalize(payload)
	}
}

func (s *Service[T, P]) notFound(id int64) error {
	return &httpx.NotFoundError{Resource: s.def.Resource, IDs: []int64{id}}
}

func (s *Service[T, P]) runListHook(ctx context.Context, items []T) error {
	if s.def.ListHook == nil || len(items) == 0 {
		return nil
	}
	return s.def.ListHook(ctx, items)
}

// Single adapts a list hook so it can serve as a detail hook.
func Single[T any](hook func(ctx context.Context, items []T) error) func(ctx context.Context, item *T) error {
	return func(ctx context.Context, item *T) error {
		one := []T{*item}
		if err := hook(ctx, one); err != nil {
			return err
		}
		*item = one[0]
		return nil
	}
}
