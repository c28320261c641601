package sync

import "time"

// Config holds configuration for the sync scheduler.
type Config struct {
	// Enabled toggles the background scheduler. One-shot syncs via the CLI
	// work regardless.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// ProductsCron is the cron expression for the products sync cycle.
	ProductsCron string `mapstructure:"products_cron" default:"*/5 * * * *"`
	// CategoriesCron is the cron expression for the categories sync cycle.
	CategoriesCron string `mapstructure:"categories_cron" default:"*/30 * * * *"`
	// CycleTimeoutSeconds bounds one full sync cycle.
	CycleTimeoutSeconds int `mapstructure:"cycle_timeout_seconds" default:"300"`
}

// CycleTimeout returns the configured cycle timeout as a duration.
func (c Config) CycleTimeout() time.Duration {
	if c.CycleTimeoutSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.CycleTimeoutSeconds) * time.Second
}
