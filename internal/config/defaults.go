package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultPricesURL  = "https://sfl.world/api/v1/prices"
	DefaultAPITimeout = 30 * time.Second
	DefaultMaxRetries = 3

	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 10
	DefaultMinConns  = 2

	// The original tracker documented a 5 minute interval but slept
	// for 15; 15 minutes is the value the collected data actually has.
	DefaultPollInterval = 15 * time.Minute
	DefaultPollTimeout  = 30 * time.Second

	DefaultServerPort = 8090
	DefaultStaticDir  = "web"

	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

func (c *Config) applyDefaults() {
	if c.API.PricesURL == "" {
		c.API.PricesURL = DefaultPricesURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}

	applyDBDefaults(&c.Database.Postgres)

	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}
	if c.Poller.Timeout == 0 {
		c.Poller.Timeout = DefaultPollTimeout
	}

	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultStaticDir
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}

	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
