// Package config provides configuration management for the catalog service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port)
//   - Database: MySQL connection details
//   - Cache: snapshot cache backend (memory or redis) and TTL
//   - Feed: ERP feed source, endpoint and paths
//   - Storage: S3/MinIO credentials for the bucket feed source
//   - Sync: cron schedules for the sync cycles
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
