package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/flagx"
	"github.com/dmitrijs2005/diarykeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. Zero values leave the
// current setting alone.
type FileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	DatabasePath        string         `json:"database_path" yaml:"database_path"`
	LogFormat           string         `json:"log_format" yaml:"log_format"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
	Latitude            float64        `json:"latitude" yaml:"latitude"`
	Longitude           float64        `json:"longitude" yaml:"longitude"`
	PositionURL         string         `json:"position_url" yaml:"position_url"`
	GeocoderURL         string         `json:"geocoder_url" yaml:"geocoder_url"`
	GeocoderKey         string         `json:"geocoder_key" yaml:"geocoder_key"`
	LocationTimeout     timex.Duration `json:"location_timeout" yaml:"location_timeout"`
	BestEffortTimeout   timex.Duration `json:"best_effort_timeout" yaml:"best_effort_timeout"`
	UploadConcurrency   int            `json:"upload_concurrency" yaml:"upload_concurrency"`
	LegacySilentFailure *bool          `json:"legacy_silent_failure" yaml:"legacy_silent_failure"`
}

// parseFile overlays cfg with the file named by -c/-config. Files ending in
// .yaml or .yml are read as YAML, anything else as JSON. Read and decode
// errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	setString(&cfg.ServerEndpointAddr, fc.ServerEndpointAddr)
	setDuration(&cfg.OnlineCheckInterval, fc.OnlineCheckInterval)
	setDuration(&cfg.RequestTimeout, fc.RequestTimeout)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.Latitude != 0 || fc.Longitude != 0 {
		cfg.Latitude, cfg.Longitude = fc.Latitude, fc.Longitude
	}
	setString(&cfg.PositionURL, fc.PositionURL)
	setString(&cfg.GeocoderURL, fc.GeocoderURL)
	setString(&cfg.GeocoderKey, fc.GeocoderKey)
	setDuration(&cfg.LocationTimeout, fc.LocationTimeout)
	setDuration(&cfg.BestEffortTimeout, fc.BestEffortTimeout)
	if fc.UploadConcurrency > 0 {
		cfg.UploadConcurrency = fc.UploadConcurrency
	}
	if fc.LegacySilentFailure != nil {
		cfg.LegacySilentFailure = *fc.LegacySilentFailure
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
