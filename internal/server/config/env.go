package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only variables
// that are set (and, for durations, parseable) override the current values.
//
// Recognized variables:
//
//	ADDRESS            HTTP bind address
//	DATABASE_DSN       database DSN
//	SECRET_KEY         JWT HMAC secret key
//	SESSION_VALIDITY   session token validity (time.ParseDuration format)
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("SESSION_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("S3_ROOT_USER"); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_PASSWORD"); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
}
