package cafe

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("cafe not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Create(ctx context.Context, cafe *Cafe) error
	List(ctx context.Context) ([]*Cafe, error)
	Get(ctx context.Context, id string) (*Cafe, error)
	Update(ctx context.Context, id string, cafe *Cafe) error
	Delete(ctx context.Context, id string) error
}
