package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Worker    WorkerConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port          string
	Env           string
	ScreenTimeout time.Duration
}

type StorageConfig struct {
	MaxFileSize    int64
	MaxRequestSize int64
}

type WorkerConfig struct {
	Concurrency int
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

// Keys double as environment variable names (upper-cased by viper).
const (
	KeyPort              = "port"
	KeyEnv               = "env"
	KeyScreenTimeout     = "screen_timeout"
	KeyMaxFileSize       = "max_file_size"
	KeyMaxRequestSize    = "max_request_size"
	KeyWorkerConcurrency = "worker_concurrency"
	KeyLogJSON           = "log_json"
	KeyLogDebug          = "log_debug"
	KeyRateLimitMax      = "rate_limit_max"
	KeyRateLimitWindow   = "rate_limit_window"
)

// Load reads .env if present, then environment variables and any flags bound
// to the global viper instance.
func Load() *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return FromViper(viper.GetViper())
}

func FromViper(v *viper.Viper) *Config {
	SetDefaults(v)
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port:          v.GetString(KeyPort),
			Env:           v.GetString(KeyEnv),
			ScreenTimeout: v.GetDuration(KeyScreenTimeout),
		},
		Storage: StorageConfig{
			MaxFileSize:    v.GetInt64(KeyMaxFileSize),
			MaxRequestSize: v.GetInt64(KeyMaxRequestSize),
		},
		Worker: WorkerConfig{
			Concurrency: v.GetInt(KeyWorkerConcurrency),
		},
		Log: LogConfig{
			JSON:  v.GetBool(KeyLogJSON),
			Debug: v.GetBool(KeyLogDebug),
		},
		RateLimit: RateLimitConfig{
			Max:    v.GetInt(KeyRateLimitMax),
			Window: v.GetDuration(KeyRateLimitWindow),
		},
	}
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8000")
	v.SetDefault(KeyEnv, "development")
	v.SetDefault(KeyScreenTimeout, "60s")
	v.SetDefault(KeyMaxFileSize, 10485760)
	v.SetDefault(KeyMaxRequestSize, 104857600)
	v.SetDefault(KeyWorkerConcurrency, 4)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogDebug, false)
	v.SetDefault(KeyRateLimitMax, 50)
	v.SetDefault(KeyRateLimitWindow, "1m")
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
