package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is loaded, if present, before the environment is read. Variables
// already set in the process environment win over the file.
var EnvFile = ".env"

const envPrefix = "DIARY_"

// parseEnv overlays cfg with DIARY_* variables. Malformed values panic.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString("SERVER_ADDR", &cfg.ServerEndpointAddr)
	envDuration("ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval)
	envDuration("REQUEST_TIMEOUT", &cfg.RequestTimeout)
	envString("DATABASE_PATH", &cfg.DatabasePath)
	envString("LOG_FORMAT", &cfg.LogFormat)
	envString("LOG_LEVEL", &cfg.LogLevel)
	envFloat("LATITUDE", &cfg.Latitude)
	envFloat("LONGITUDE", &cfg.Longitude)
	envString("POSITION_URL", &cfg.PositionURL)
	envString("GEOCODER_URL", &cfg.GeocoderURL)
	envString("GEOCODER_KEY", &cfg.GeocoderKey)
	envDuration("LOCATION_TIMEOUT", &cfg.LocationTimeout)
	envDuration("BEST_EFFORT_TIMEOUT", &cfg.BestEffortTimeout)
	envInt("UPLOAD_CONCURRENCY", &cfg.UploadConcurrency)
	envBool("LEGACY_SILENT_FAILURE", &cfg.LegacySilentFailure)
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func envString(name string, dst *string) {
	if v, ok := lookup(name); ok {
		*dst = v
	}
}

func envDuration(name string, dst *time.Duration) {
	if v, ok := lookup(name); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}
}

func envFloat(name string, dst *float64) {
	if v, ok := lookup(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		*dst = f
	}
}

func envInt(name string, dst *int) {
	if v, ok := lookup(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		*dst = n
	}
}

func envBool(name string, dst *bool) {
	if v, ok := lookup(name); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		*dst = b
	}
}
