package repository

import (
	"context"

	"github.com/washlane/laundry-api/internal/domain/entity"
)

// OrderFilter narrows List results. Nil fields match everything.
type OrderFilter struct {
	Delivered *bool
}

// OrderRepository defines the interface for order ledger access.
// GetByID returns (nil, nil) when no order has the given id.
type OrderRepository interface {
	Insert(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter OrderFilter) ([]entity.Order, error)
}
