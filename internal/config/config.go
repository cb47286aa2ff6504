package config

import "time"

// Config is the root configuration shared by the tracker and the API server.
type Config struct {
	Instance InstanceConfig `yaml:"instance"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Poller   PollerConfig   `yaml:"poller"`
	Server   ServerConfig   `yaml:"server"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// InstanceConfig identifies this deployment.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// APIConfig holds settings for the upstream sfl.world prices API.
type APIConfig struct {
	PricesURL  string        `yaml:"prices_url"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// DatabaseConfig holds the PostgreSQL connection for price history.
type DatabaseConfig struct {
	Postgres DBConfig `yaml:"postgres"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// PollerConfig holds ingestion loop settings.
type PollerConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

// ServerConfig holds query API server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	StaticDir   string   `yaml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// MetricsConfig holds Prometheus metrics settings for the tracker.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
