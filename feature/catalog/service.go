package catalog

import (
	"context"
	"fmt"

	"catalog-sync/core/cache"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
)

// ListParams are the arguments of a product list query.
type ListParams struct {
	Page     int
	PageSize int
	Filter   Filter
}

// Validate rejects non-positive paging and invalid filter bounds.
// Runs before any store or cache access.
func (p ListParams) Validate() error {
	if p.Page <= 0 {
		return fmt.Errorf("%w: page must be positive", ErrInvalidQuery)
	}
	if p.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive", ErrInvalidQuery)
	}
	return p.Filter.Validate()
}

func (p ListParams) offset() int {
	return (p.Page - 1) * p.PageSize
}

// Service is the catalog query engine. List queries are answered cache-aside:
// the snapshot cache first, the store on a miss. Single-entity lookups always
// bypass the cache and hit the store.
type Service struct {
	store      Store
	products   productLister
	categories categoryLister
	logger     *zap.Logger
}

// NewService creates a query engine over the given store and snapshot cache.
func NewService(store Store, c cache.Cache, logger *zap.Logger) *Service {
	storeSrc := &storeSource{store: store}
	snapshot := &snapshotSource{cache: c, next: storeSrc, logger: logger}
	return &Service{
		store:      store,
		products:   snapshot,
		categories: snapshot,
		logger:     logger,
	}
}

// ProductByID looks up a single product in the store.
// Returns (nil, nil) when no product has the given id.
func (s *Service) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.store.ProductByID(ctx, id)
}

// CategoryByID looks up a single category in the store.
// Returns (nil, nil) when no category has the given id.
func (s *Service) CategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.store.CategoryByID(ctx, id)
}

// ListProducts returns one page of products matching the filter, plus the
// total matching count.
func (s *Service) ListProducts(ctx context.Context, p ListParams) (*models.ProductPage, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.products.listProducts(ctx, p)
}

// ListCategories returns one page of categories plus the total count.
func (s *Service) ListCategories(ctx context.Context, page, pageSize int) (*models.CategoryPage, error) {
	if page <= 0 {
		return nil, fmt.Errorf("%w: page must be positive", ErrInvalidQuery)
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page_size must be positive", ErrInvalidQuery)
	}
	return s.categories.listCategories(ctx, page, pageSize)
}
