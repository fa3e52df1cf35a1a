package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Reminders RemindersConfig `mapstructure:"reminders"`
	Focus     FocusConfig     `mapstructure:"focus"`
	Assistant AssistantConfig `mapstructure:"assistant"`
	Habits    HabitsConfig    `mapstructure:"habits"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Timezone  string          `mapstructure:"timezone"`
}

type ServerConfig struct {
	Port    int           `mapstructure:"port"`
	Mode    string        `mapstructure:"mode"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// StoreConfig selects the key-value backend behind the persistent store.
// Driver is one of memory, sqlite, postgres or redis.
type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	KeyPrefix  string `mapstructure:"key_prefix"`
	Compress   bool   `mapstructure:"compress"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	Timezone        string        `mapstructure:"timezone"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RemindersConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// FocusConfig holds pomodoro durations in minutes.
type FocusConfig struct {
	WorkMinutes       int   `mapstructure:"work_minutes"`
	ShortBreakMinutes int   `mapstructure:"short_break_minutes"`
	LongBreakMinutes  int   `mapstructure:"long_break_minutes"`
	SessionsUntilLong int   `mapstructure:"sessions_until_long_break"`
	Presets           []int `mapstructure:"presets"`
}

type AssistantConfig struct {
	MinDelay time.Duration `mapstructure:"min_delay"`
	MaxDelay time.Duration `mapstructure:"max_delay"`
	Seed     int64         `mapstructure:"seed"`
}

// HabitsConfig selects how un-completing a habit adjusts XP: "symmetric" or "legacy".
type HabitsConfig struct {
	XPPolicy string `mapstructure:"xp_policy"`
}

// RateLimitConfig bounds assistant requests per client. Zero requests disables it.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.timeout", 30*time.Second)
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.sqlite_path", "focusflow.db")
	v.SetDefault("store.key_prefix", "focusflow:")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Origin", "Content-Type", "Accept"})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("reminders.interval", time.Minute)
	v.SetDefault("focus.work_minutes", 25)
	v.SetDefault("focus.short_break_minutes", 10)
	v.SetDefault("focus.long_break_minutes", 15)
	v.SetDefault("focus.sessions_until_long_break", 4)
	v.SetDefault("focus.presets", []int{25, 30, 45})
	v.SetDefault("assistant.min_delay", time.Second)
	v.SetDefault("assistant.max_delay", 3*time.Second)
	v.SetDefault("habits.xp_policy", "symmetric")
	v.SetDefault("rate_limit.requests", 30)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("timezone", "Local")
}

func LoadConfig(configPath string) (*Config, error) {
	var config Config

	// .env is optional
	_ = godotenv.Load()

	if envConfigFile := os.Getenv("CONFIG_FILE"); envConfigFile != "" {
		configPath = envConfigFile
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if configPath != "" {
		dir := filepath.Dir(configPath)
		file := filepath.Base(configPath)
		ext := filepath.Ext(file)
		name := strings.TrimSuffix(file, ext)

		v.AddConfigPath(dir)
		v.SetConfigName(name)
	} else {
		_, filename, _, _ := runtime.Caller(0)
		pkgConfigDir := filepath.Dir(filename)
		projectRoot := filepath.Join(pkgConfigDir, "..", "..")

		v.AddConfigPath(".")
		v.AddConfigPath(pkgConfigDir)
		v.AddConfigPath(projectRoot)
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envVars := map[string]string{
		"server.port":         "SERVER_PORT",
		"server.mode":         "SERVER_MODE",
		"server.timeout":      "SERVER_TIMEOUT",
		"store.driver":        "STORE_DRIVER",
		"store.sqlite_path":   "STORE_SQLITE_PATH",
		"database.host":       "DB_HOST",
		"database.port":       "DB_PORT",
		"database.user":       "DB_USER",
		"database.password":   "DB_PASSWORD",
		"database.name":       "DB_NAME",
		"database.sslmode":    "DB_SSLMODE",
		"redis.host":          "REDIS_HOST",
		"redis.port":          "REDIS_PORT",
		"redis.password":      "REDIS_PASSWORD",
		"redis.db":            "REDIS_DB",
		"logging.level":       "LOG_LEVEL",
		"logging.format":      "LOG_FORMAT",
		"reminders.interval":  "REMINDER_INTERVAL",
		"assistant.min_delay": "ASSISTANT_MIN_DELAY",
		"assistant.max_delay": "ASSISTANT_MAX_DELAY",
		"habits.xp_policy":    "HABITS_XP_POLICY",
		"rate_limit.requests": "RATE_LIMIT_REQUESTS",
		"rate_limit.window":   "RATE_LIMIT_WINDOW",
		"timezone":            "FOCUSFLOW_TIMEZONE",
	}

	for configKey, envVar := range envVars {
		if value := os.Getenv(envVar); value != "" {
			switch envVar {
			case "SERVER_PORT", "DB_PORT", "REDIS_PORT", "REDIS_DB", "RATE_LIMIT_REQUESTS":
				if intVal, err := strconv.Atoi(value); err == nil {
					v.Set(configKey, intVal)
				}
			case "SERVER_TIMEOUT", "REMINDER_INTERVAL", "ASSISTANT_MIN_DELAY", "ASSISTANT_MAX_DELAY", "RATE_LIMIT_WINDOW":
				if d, err := time.ParseDuration(value); err == nil {
					v.Set(configKey, d)
				}
			default:
				v.Set(configKey, value)
			}
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Location resolves the configured timezone, defaulting to the local zone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
