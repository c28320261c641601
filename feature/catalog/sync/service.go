package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-sync/core/cache"
	"catalog-sync/core/feed"
	"catalog-sync/feature/catalog"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
)

// Service runs one fetch -> reconcile -> snapshot-refresh cycle per catalog
// type. A fetch or reconcile failure aborts the cycle with the store and cache
// untouched (the reconcile batch rolls back as a unit). A snapshot write
// failure only degrades cache freshness: the store is already committed, so
// the cycle is logged as degraded but does not fail.
type Service struct {
	source      feed.Source
	store       catalog.Store
	cache       cache.Cache
	feedCfg     feed.Config
	snapshotTTL time.Duration
	logger      *zap.Logger
}

// NewService creates a sync service.
func NewService(source feed.Source, store catalog.Store, c cache.Cache, feedCfg feed.Config, snapshotTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		source:      source,
		store:       store,
		cache:       c,
		feedCfg:     feedCfg,
		snapshotTTL: snapshotTTL,
		logger:      logger,
	}
}

// SyncProducts runs one product sync cycle.
func (s *Service) SyncProducts(ctx context.Context) error {
	l := s.logger.With(zap.String("catalog", "products"))

	products, err := feed.Records[models.Product](ctx, s.source, s.feedCfg.ProductsPath)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}
	l.Debug("Products feed fetched", zap.Int("records", len(products)))

	count, err := s.store.UpsertProducts(ctx, products)
	if err != nil {
		return fmt.Errorf("reconcile products: %w", err)
	}
	l.Info("Products reconciled", zap.Int("count", count))

	s.refreshSnapshot(ctx, l, catalog.SnapshotKeyProducts, func(ctx context.Context) (any, error) {
		return s.store.AllProducts(ctx)
	})
	return nil
}

// SyncCategories runs one category sync cycle.
func (s *Service) SyncCategories(ctx context.Context) error {
	l := s.logger.With(zap.String("catalog", "categories"))

	categories, err := feed.Records[models.Category](ctx, s.source, s.feedCfg.CategoriesPath)
	if err != nil {
		return fmt.Errorf("fetch categories: %w", err)
	}
	l.Debug("Categories feed fetched", zap.Int("records", len(categories)))

	count, err := s.store.UpsertCategories(ctx, categories)
	if err != nil {
		return fmt.Errorf("reconcile categories: %w", err)
	}
	l.Info("Categories reconciled", zap.Int("count", count))

	s.refreshSnapshot(ctx, l, catalog.SnapshotKeyCategories, func(ctx context.Context) (any, error) {
		return s.store.AllCategories(ctx)
	})
	return nil
}

// refreshSnapshot writes the full committed collection into the cache under
// key, as one Set call. Readers keep seeing the previous snapshot until the
// Set completes; any failure here leaves the cache stale but never fails the
// cycle.
func (s *Service) refreshSnapshot(ctx context.Context, l *zap.Logger, key string, load func(context.Context) (any, error)) {
	collection, err := load(ctx)
	if err != nil {
		l.Warn("Snapshot refresh skipped, store read failed", zap.String("key", key), zap.Error(err))
		return
	}
	data, err := json.Marshal(collection)
	if err != nil {
		l.Warn("Snapshot refresh skipped, marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.snapshotTTL); err != nil {
		l.Warn("Snapshot write failed, cache left stale", zap.String("key", key), zap.Error(err))
		return
	}
	l.Debug("Snapshot refreshed", zap.String("key", key), zap.Int("bytes", len(data)))
}
