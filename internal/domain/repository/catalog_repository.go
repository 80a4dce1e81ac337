package repository

import (
	"context"

	"github.com/washlane/laundry-api/internal/domain/entity"
)

// CatalogRepository defines the interface for price-card item access.
// GetByID returns (nil, nil) when no item has the given id.
type CatalogRepository interface {
	Insert(ctx context.Context, item *entity.CatalogItem) error
	GetByID(ctx context.Context, id int) (*entity.CatalogItem, error)
	Update(ctx context.Context, item *entity.CatalogItem) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]entity.CatalogItem, error)
}
