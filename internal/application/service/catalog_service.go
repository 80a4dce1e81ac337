package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/washlane/laundry-api/internal/domain/entity"
	"github.com/washlane/laundry-api/internal/domain/repository"
	"github.com/washlane/laundry-api/pkg/apperror"
)

// CatalogService handles price-card item registration
type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// CatalogItemInput carries one price-card registration. Price arrives
// as raw text and must parse as a number.
type CatalogItemInput struct {
	Category string
	Item     string
	Service  string
	Delivery string
	Price    string
}

func (s *CatalogService) validate(input *CatalogItemInput) (float64, error) {
	price, parseErr := strconv.ParseFloat(strings.TrimSpace(input.Price), 64)
	if input.Category == "" || input.Item == "" || input.Service == "" || input.Delivery == "" || input.Price == "" || parseErr != nil {
		return 0, apperror.NewValidationError("Category, Item, Service, Delivery and a valid Price are all required.")
	}
	return price, nil
}

// Create registers a new price-card item. All five fields are required.
func (s *CatalogService) Create(ctx context.Context, input *CatalogItemInput) (*entity.CatalogItem, error) {
	price, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	item := &entity.CatalogItem{
		Category: input.Category,
		Item:     input.Item,
		Service:  input.Service,
		Delivery: input.Delivery,
		Price:    price,
	}
	if err := s.catalogRepo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get fetches one price-card item by id
func (s *CatalogService) Get(ctx context.Context, id int) (*entity.CatalogItem, error) {
	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Catalog item")
	}
	return item, nil
}

// Update overwrites an existing price-card item. The same five-field
// requirement applies as on creation.
func (s *CatalogService) Update(ctx context.Context, id int, input *CatalogItemInput) (*entity.CatalogItem, error) {
	price, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Category = input.Category
	existing.Item = input.Item
	existing.Service = input.Service
	existing.Delivery = input.Delivery
	existing.Price = price

	if err := s.catalogRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a price-card item
func (s *CatalogService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.catalogRepo.Delete(ctx, id)
}

// List returns all registered price-card items
func (s *CatalogService) List(ctx context.Context) ([]entity.CatalogItem, error) {
	return s.catalogRepo.List(ctx)
}
