package config

import "time"

// Config holds runtime settings for the diarykeeper CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration

	DatabasePath string

	LogFormat string
	LogLevel  string

	// Position source: PositionURL wins over the static coordinates.
	Latitude    float64
	Longitude   float64
	PositionURL string

	GeocoderURL string
	GeocoderKey string

	LocationTimeout   time.Duration
	BestEffortTimeout time.Duration
	UploadConcurrency int

	// LegacySilentFailure hides save failures from the user.
	LegacySilentFailure bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "diarykeeper.db"
	c.LogFormat = "text"
	c.LogLevel = "warn"
	c.GeocoderURL = "https://restapi.amap.com/v3/geocode/regeo"
	c.LocationTimeout = 10 * time.Second
	c.BestEffortTimeout = 15 * time.Second
	c.UploadConcurrency = 4
}

// LoadConfig applies defaults, then a config file (if -c/-config is given),
// then the environment (including a .env file), then command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
