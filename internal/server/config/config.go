// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags (applied in that order).
package config

import "time"

// Config holds runtime settings for the memorizer server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx) or an SQLite file path.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use
//     test defaults in prod.
//   - SessionValidityDuration: lifetime of issued session tokens.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: avatar object storage settings.
type Config struct {
	EndpointAddr            string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = "memorizer.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 24 * time.Hour
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "avatars"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
