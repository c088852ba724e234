package cafe

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Service owns normalization, aggregation, and the fallback policy. The
// primary repository is required; the local store and the list cache are
// optional collaborators.
type Service struct {
	repo  Repository
	local *LocalStore
	cache *ListCache
	now   func() time.Time
}

func NewService(repo Repository, local *LocalStore, cache *ListCache) *Service {
	return &Service{
		repo:  repo,
		local: local,
		cache: cache,
		now:   time.Now,
	}
}

// --------------------------------------------------
// Create cafe
// --------------------------------------------------
func (s *Service) CreateCafe(ctx context.Context, form Form) (*Cafe, error) {
	cafe, err := BuildForCreate(form, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, cafe); err != nil {
		// Fallback policy: a failed primary create lands in the local
		// store instead of being lost.
		if s.local != nil {
			if lerr := s.local.Upsert(cafe); lerr == nil {
				log.Printf("primary create failed, saved %s locally: %v", cafe.ID, err)
				s.invalidate(ctx)
				return cafe, nil
			}
		}
		return nil, fmt.Errorf("create cafe: %w", err)
	}

	s.invalidate(ctx)
	return cafe, nil
}

// --------------------------------------------------
// List cafes, newest first
// --------------------------------------------------
func (s *Service) ListCafes(ctx context.Context) ([]*Cafe, error) {
	if s.cache != nil {
		if cafes, ok := s.cache.Get(ctx); ok {
			return cafes, nil
		}
	}

	cafes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cafes); err != nil {
			log.Printf("cafe list cache write failed: %v", err)
		}
	}
	return cafes, nil
}

// --------------------------------------------------
// Get cafe with cost breakdown
// --------------------------------------------------
func (s *Service) GetCafe(ctx context.Context, id string) (*Cafe, Totals, error) {
	cafe, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, Totals{}, err
	}
	return cafe, ComputeTotals(cafe), nil
}

// --------------------------------------------------
// Update cafe (full replace)
// --------------------------------------------------
func (s *Service) UpdateCafe(ctx context.Context, id string, form Form) (*Cafe, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cafe, err := BuildForUpdate(existing, form, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, cafe); err != nil {
		return nil, fmt.Errorf("update cafe: %w", err)
	}

	s.invalidate(ctx)
	return cafe, nil
}

// --------------------------------------------------
// Delete cafe (irreversible)
// --------------------------------------------------
func (s *Service) DeleteCafe(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.local != nil {
		if err := s.local.Delete(id); err != nil {
			log.Printf("local delete of %s failed: %v", id, err)
		}
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("cafe list cache invalidation failed: %v", err)
	}
}
