package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is loaded, if present, before DIARYD_* variables are read.
var EnvFile = ".env"

// parseEnv overlays cfg with DIARYD_* variables. Malformed durations panic.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	strs := map[string]*string{
		"DIARYD_GRPC_ADDR":        &cfg.EndpointAddrGRPC,
		"DIARYD_DATABASE_DSN":     &cfg.DatabaseDSN,
		"DIARYD_SECRET_KEY":       &cfg.SecretKey,
		"DIARYD_S3_ROOT_USER":     &cfg.S3RootUser,
		"DIARYD_S3_ROOT_PASSWORD": &cfg.S3RootPassword,
		"DIARYD_S3_BUCKET":        &cfg.S3Bucket,
		"DIARYD_S3_REGION":        &cfg.S3Region,
		"DIARYD_S3_BASE_ENDPOINT": &cfg.S3BaseEndpoint,
		"DIARYD_LOG_FORMAT":       &cfg.LogFormat,
		"DIARYD_LOG_LEVEL":        &cfg.LogLevel,
	}
	for name, dst := range strs {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"DIARYD_ACCESS_TOKEN_TTL": &cfg.AccessTokenValidityDuration,
		"DIARYD_PRESIGN_EXPIRY":   &cfg.PresignExpiry,
	}
	for name, dst := range durations {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}
}
