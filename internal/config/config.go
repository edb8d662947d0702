package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port           int     `mapstructure:"port"`
	TimeoutSeconds int     `mapstructure:"timeoutSeconds"`
	RateLimitRPS   float64 `mapstructure:"rateLimitRps"`
	RateLimitBurst int     `mapstructure:"rateLimitBurst"`
}

type DatabaseConfig struct {
	// Path to the SQLite database file; ":memory:" for an ephemeral store.
	Path string `mapstructure:"path"`
}

type SessionConfig struct {
	Secret    string        `mapstructure:"secret"`
	TTL       time.Duration `mapstructure:"ttl"`
	AdminSeed AdminSeed     `mapstructure:"adminSeed"`
}

// AdminSeed controls the account created when the user table is empty.
type AdminSeed struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	FullName string `mapstructure:"fullName"`
	Email    string `mapstructure:"email"`
}

type RedisConfig struct {
	// When Enabled, sessions are stored in redis instead of process memory.
	Enabled      bool   `mapstructure:"enabled"`
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"poolSize"`
	MinIdleConns int    `mapstructure:"minIdleConns"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// envOverrides are the deployment-time knobs that may be set without a
// config file edit, CLINIC_* in the environment.
type envOverrides struct {
	Port          int    `envconfig:"PORT"`
	DatabasePath  string `envconfig:"DATABASE_PATH"`
	SessionSecret string `envconfig:"SESSION_SECRET"`
	RedisURL      string `envconfig:"REDIS_URL"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env cover a dev run.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("clinic", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	applyOverrides(&cfg, env)

	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("server.rateLimitRps", 50)
	viper.SetDefault("server.rateLimitBurst", 100)
	viper.SetDefault("database.path", "clinic.db")
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("session.adminSeed.username", "admin")
	viper.SetDefault("session.adminSeed.password", "admin123")
	viper.SetDefault("session.adminSeed.fullName", "System Administrator")
	viper.SetDefault("session.adminSeed.email", "admin@clinic.com")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("redis.minIdleConns", 2)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
}

func applyOverrides(cfg *Config, env envOverrides) {
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.DatabasePath != "" {
		cfg.Database.Path = env.DatabasePath
	}
	if env.SessionSecret != "" {
		cfg.Session.Secret = env.SessionSecret
	}
	if env.RedisURL != "" {
		cfg.Redis.Enabled = true
		cfg.Redis.URL = env.RedisURL
	}
}
