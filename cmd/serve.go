package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalog-sync/core/cache"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/feed"
	"catalog-sync/core/loader"
	"catalog-sync/core/logger"
	"catalog-sync/core/middleware/rayid"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"
	catalogsync "catalog-sync/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog service",
	Long:  `Starts the HTTP query API and the background sync scheduler.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		// The store is the source of truth; without it nothing works.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to catalog database")

		// 4. Initialize Snapshot Cache
		snapshots, err := cache.New(cfg.Cache)
		if err != nil {
			logg.Fatal("Failed to create snapshot cache", zap.Error(err))
		}
		logg.Info("Snapshot cache ready", zap.String("backend", cfg.Cache.Backend))

		// 5. Initialize Feed Source
		// The object storage client is only needed for the bucket source.
		var store storage.Client
		if cfg.Feed.Source == feed.SourceBucket {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}
		source, err := feed.NewSource(cfg.Feed, store, cfg.Storage.Bucket)
		if err != nil {
			logg.Fatal("Failed to create feed source", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 7. Register Features
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(db, snapshots, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Sync Scheduler
		var scheduler *catalogsync.Scheduler
		if cfg.Sync.Enabled {
			svc := catalogsync.NewService(source, catalog.NewStore(db), snapshots,
				cfg.Feed, cfg.Cache.SnapshotTTL(), logg)
			scheduler = catalogsync.NewScheduler(svc, cfg.Sync, logg)
			if err := scheduler.Start(); err != nil {
				logg.Fatal("Failed to start sync scheduler", zap.Error(err))
			}
		} else {
			logg.Warn("Sync scheduler disabled, catalog will not refresh")
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if scheduler != nil {
			scheduler.Stop()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
