package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"catalog-sync/core/cache"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
)

// productLister answers a product list query from one backing data source.
// Both implementations honor the same filter and pagination contract, so the
// caller never knows which one answered.
type productLister interface {
	listProducts(ctx context.Context, p ListParams) (*models.ProductPage, error)
}

// categoryLister answers a category list query from one backing data source.
type categoryLister interface {
	listCategories(ctx context.Context, page, pageSize int) (*models.CategoryPage, error)
}

// storeSource answers list queries directly from the persistent store,
// pushing the filter down as SQL.
type storeSource struct {
	store Store
}

func (s *storeSource) listProducts(ctx context.Context, p ListParams) (*models.ProductPage, error) {
	total, err := s.store.CountProducts(ctx, p.Filter)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListProducts(ctx, p.Filter, p.offset(), p.PageSize)
	if err != nil {
		return nil, err
	}
	return &models.ProductPage{
		TotalCount: int(total),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Items:      items,
	}, nil
}

func (s *storeSource) listCategories(ctx context.Context, page, pageSize int) (*models.CategoryPage, error) {
	total, err := s.store.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListCategories(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &models.CategoryPage{
		TotalCount: int(total),
		Page:       page,
		PageSize:   pageSize,
		Items:      items,
	}, nil
}

// snapshotSource answers list queries from the cached snapshot. On a clean
// miss, a cache backend failure or a corrupt snapshot it delegates to the
// store-backed source; a cache problem never surfaces to the caller.
type snapshotSource struct {
	cache  cache.Cache
	next   *storeSource
	logger *zap.Logger
}

func (s *snapshotSource) listProducts(ctx context.Context, p ListParams) (*models.ProductPage, error) {
	data, err := s.cache.Get(ctx, SnapshotKeyProducts)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("Product snapshot read failed, falling back to store", zap.Error(err))
		}
		return s.next.listProducts(ctx, p)
	}

	var all []models.Product
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Product snapshot is corrupt, falling back to store", zap.Error(err))
		return s.next.listProducts(ctx, p)
	}

	filtered := make([]models.Product, 0, len(all))
	for _, item := range all {
		if p.Filter.Match(item) {
			filtered = append(filtered, item)
		}
	}

	// The total reflects the filtered snapshot, which may lag the store until
	// the next sync cycle refreshes it.
	return &models.ProductPage{
		TotalCount: len(filtered),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Items:      pageSlice(filtered, p.offset(), p.PageSize),
	}, nil
}

func (s *snapshotSource) listCategories(ctx context.Context, page, pageSize int) (*models.CategoryPage, error) {
	data, err := s.cache.Get(ctx, SnapshotKeyCategories)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("Category snapshot read failed, falling back to store", zap.Error(err))
		}
		return s.next.listCategories(ctx, page, pageSize)
	}

	var all []models.Category
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Category snapshot is corrupt, falling back to store", zap.Error(err))
		return s.next.listCategories(ctx, page, pageSize)
	}

	return &models.CategoryPage{
		TotalCount: len(all),
		Page:       page,
		PageSize:   pageSize,
		Items:      pageSlice(all, (page-1)*pageSize, pageSize),
	}, nil
}

// pageSlice returns the window [offset, offset+limit) of items. A window past
// the end yields an empty, non-nil slice.
func pageSlice[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
