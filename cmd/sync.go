package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/cache"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/feed"
	"catalog-sync/core/logger"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	catalogsync "catalog-sync/feature/catalog/sync"

	"github.com/spf13/cobra"
)

var (
	syncProducts   bool
	syncCategories bool
)

// syncCmd runs sync cycles once and exits. Useful for ops and for
// deployments that prefer an external cron over the built-in scheduler.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a one-shot catalog sync",
	Long: `Fetch the ERP feed, reconcile it into the store and refresh the cache
snapshot, once per selected catalog type.

Examples:
  # Sync both catalogs
  catalog-sync sync

  # Sync products only
  catalog-sync sync --products`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncProducts, "products", false, "Sync the products catalog")
	syncCmd.Flags().BoolVar(&syncCategories, "categories", false, "Sync the categories catalog")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	// No flags means both
	if !syncProducts && !syncCategories {
		syncProducts = true
		syncCategories = true
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	snapshots, err := cache.New(cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to create snapshot cache: %w", err)
	}

	var store storage.Client
	if cfg.Feed.Source == feed.SourceBucket {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}
	source, err := feed.NewSource(cfg.Feed, store, cfg.Storage.Bucket)
	if err != nil {
		return fmt.Errorf("failed to create feed source: %w", err)
	}

	svc := catalogsync.NewService(source, catalog.NewStore(db), snapshots,
		cfg.Feed, cfg.Cache.SnapshotTTL(), l)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.CycleTimeout())
	defer cancel()

	if syncProducts {
		if err := svc.SyncProducts(ctx); err != nil {
			return fmt.Errorf("product sync failed: %w", err)
		}
		l.Info("Product sync finished")
	}
	if syncCategories {
		if err := svc.SyncCategories(ctx); err != nil {
			return fmt.Errorf("category sync failed: %w", err)
		}
		l.Info("Category sync finished")
	}
	return nil
}
