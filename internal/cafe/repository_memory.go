package cafe

import (
	"context"
	"sort"
)

// InMemoryRepository is a map-backed Repository used in tests.
type InMemoryRepository struct {
	cafes map[string]*Cafe
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		cafes: make(map[string]*Cafe),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, cafe *Cafe) error {
	if cafe.ID == "" {
		cafe.ID = NewID("cafe")
	}
	stored := *cafe
	r.cafes[cafe.ID] = &stored
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Cafe, error) {
	cafes := make([]*Cafe, 0, len(r.cafes))
	for _, c := range r.cafes {
		copied := *c
		cafes = append(cafes, &copied)
	}
	sort.Slice(cafes, func(i, j int) bool {
		return cafes[i].CreatedAt.After(cafes[j].CreatedAt)
	})
	return cafes, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Cafe, error) {
	c, ok := r.cafes[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, cafe *Cafe) error {
	if _, ok := r.cafes[id]; !ok {
		return ErrNotFound
	}
	stored := *cafe
	stored.ID = id
	r.cafes[id] = &stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.cafes[id]; !ok {
		return ErrNotFound
	}
	delete(r.cafes, id)
	return nil
}
