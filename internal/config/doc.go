// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation,
// so credentials can live in the environment (or a .env file loaded at startup)
// while everything else stays in the YAML file.
package config
