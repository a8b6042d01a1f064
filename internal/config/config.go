package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the scan itself, screenshot rendering,
// the optional ops HTTP server, the optional findings database, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Scan contains the probing engine settings
	Scan struct {
		// TotalAttempts is the number of random addresses probed in one run
		TotalAttempts int `env:"SCAN_TOTAL_ATTEMPTS" env-default:"10000" yaml:"totalAttempts"`
		// Concurrency is the maximum number of probes in flight at once
		Concurrency int `env:"SCAN_CONCURRENCY" env-default:"1000" yaml:"concurrency"`
		// Backend selects how probes are scheduled: workers, semaphore or errgroup
		Backend string `env:"SCAN_BACKEND" env-default:"workers" yaml:"backend"`
		// MaxRate caps how many probes are started per second, 0 disables the cap
		MaxRate float64 `env:"SCAN_MAX_RATE" env-default:"0" yaml:"maxRate"`
		// RequestTimeout is the hard wall-clock limit of a single probe
		RequestTimeout time.Duration `env:"SCAN_REQUEST_TIMEOUT" env-default:"5s" yaml:"requestTimeout"`
		// UserAgent is sent with every probe
		UserAgent string `env:"SCAN_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/106.0.0.0 Safari/537.36 Edg/106.0.1370.47" yaml:"userAgent"` //nolint: lll
		// MaxBodyBytes limits how much of a page is read when looking for the title
		MaxBodyBytes int64 `env:"SCAN_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// ProgressEvery logs a progress line after this many finished probes, 0 disables it
		ProgressEvery int `env:"SCAN_PROGRESS_EVERY" env-default:"1000" yaml:"progressEvery"`
		// BoringTitles replaces the built-in denylist when set. Titles may contain commas,
		// so the list is only read from the YAML file.
		BoringTitles []string `yaml:"boringTitles"`
		// ExtraBoringTitles is appended to the active denylist
		ExtraBoringTitles []string `yaml:"extraBoringTitles"`
	} `yaml:"scan"`

	// Render contains the screenshot renderer settings
	Render struct {
		// Enabled turns screenshot rendering on for accepted findings
		Enabled bool `env:"RENDER_ENABLED" env-default:"false" yaml:"enabled"`
		// OutputDir is where screenshots are written
		OutputDir string `env:"RENDER_OUTPUT_DIR" env-default:"./resources" yaml:"outputDir"`
		// Concurrency is the number of pages rendered at once
		Concurrency int `env:"RENDER_CONCURRENCY" env-default:"8" yaml:"concurrency"`
		// SettleDelay is how long a loaded page is left alone before capture
		SettleDelay time.Duration `env:"RENDER_SETTLE_DELAY" env-default:"10s" yaml:"settleDelay"`
		// Timeout bounds a whole render including navigation and the settle delay
		Timeout time.Duration `env:"RENDER_TIMEOUT" env-default:"40s" yaml:"timeout"`
		// Width and Height set the viewport in CSS pixels
		Width  int64 `env:"RENDER_WIDTH"  env-default:"1920" yaml:"width"`
		Height int64 `env:"RENDER_HEIGHT" env-default:"1080" yaml:"height"`
		// BlankSampleStep is the pixel stride used when checking for all-white captures
		BlankSampleStep int `env:"RENDER_BLANK_SAMPLE_STEP" env-default:"10" yaml:"blankSampleStep"`
		// ExecPath points at a Chrome/Chromium binary, empty means auto-detect
		ExecPath string `env:"RENDER_EXEC_PATH" yaml:"execPath"`
	} `yaml:"render"`

	// HTTP contains the ops server (metrics and pprof) configuration
	HTTP struct {
		// Enabled starts the ops server for the duration of the scan
		Enabled bool `env:"HTTP_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":9090" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains the findings archive connection configuration
	Database struct {
		// Enabled stores accepted findings after each scan
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"webroulette" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// GracefulShutdownTimeout is the maximum duration to wait for the ops server to drain during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Default returns a Config populated only from env vars and defaults, for runs
// without a config file.
func Default() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read env: %w", err)
	}

	return &cfg, nil
}
