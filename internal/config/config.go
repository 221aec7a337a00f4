package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Logger     LoggerConfig     `mapstructure:"logger"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Checker    CheckerConfig    `mapstructure:"checker"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	Schema          string        `mapstructure:"schema"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.Schema,
	)
}

type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// ExtractionConfig holds the tunable lists and thresholds used by the
// signal extraction pipeline. Everything here is data, not code, so
// deployments can extend the lists without a rebuild.
type ExtractionConfig struct {
	SuspiciousTLDs         []string          `mapstructure:"suspicious_tlds"`
	URLShorteners          []string          `mapstructure:"url_shorteners"`
	KnownBrands            map[string]string `mapstructure:"known_brands"`
	MinPhoneDigits         int               `mapstructure:"min_phone_digits"`
	MaxDomainHyphens       int               `mapstructure:"max_domain_hyphens"`
	NewDomainThresholdDays int               `mapstructure:"new_domain_threshold_days"`
	LowEngagementRate      float64           `mapstructure:"low_engagement_rate"`
	HighEngagementRate     float64           `mapstructure:"high_engagement_rate"`
}

// CheckerConfig holds the phishing blocklist feed settings
type CheckerConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	FeedURL         string        `mapstructure:"feed_url"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	FetchTimeout    time.Duration `mapstructure:"fetch_timeout"`
}

// DefaultExtraction returns the stock lists and thresholds
func DefaultExtraction() ExtractionConfig {
	return ExtractionConfig{
		SuspiciousTLDs: []string{
			"zip", "mov", "xyz", "top", "click", "country", "gq", "cn", "ru", "tk", "ml",
		},
		URLShorteners: []string{
			"bit.ly", "t.co", "goo.gl", "tinyurl.com", "ow.ly", "is.gd",
		},
		KnownBrands: map[string]string{
			"google":    "google.com",
			"facebook":  "facebook.com",
			"amazon":    "amazon.com",
			"apple":     "apple.com",
			"microsoft": "microsoft.com",
			"netflix":   "netflix.com",
			"paypal":    "paypal.com",
			"ebay":      "ebay.com",
			"alibaba":   "alibaba.com",
			"tencent":   "tencent.com",
			"baidu":     "baidu.com",
			"yahoo":     "yahoo.com",
		},
		MinPhoneDigits:         7,
		MaxDomainHyphens:       2,
		NewDomainThresholdDays: 30,
		LowEngagementRate:      0.01,
		HighEngagementRate:     0.1,
	}
}

// Load reads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/scamsignals")
	}

	setDefaults(v)

	// Environment variables
	v.SetEnvPrefix("SCAMSIGNALS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind nested env vars explicitly (viper doesn't auto-bind nested struct fields)
	v.BindEnv("redis.enabled", "SCAMSIGNALS_REDIS_ENABLED")
	v.BindEnv("redis.host", "SCAMSIGNALS_REDIS_HOST")
	v.BindEnv("redis.port", "SCAMSIGNALS_REDIS_PORT")
	v.BindEnv("redis.password", "SCAMSIGNALS_REDIS_PASSWORD")
	v.BindEnv("database.enabled", "SCAMSIGNALS_DATABASE_ENABLED")
	v.BindEnv("database.host", "SCAMSIGNALS_DATABASE_HOST")
	v.BindEnv("database.port", "SCAMSIGNALS_DATABASE_PORT")
	v.BindEnv("database.user", "SCAMSIGNALS_DATABASE_USER")
	v.BindEnv("database.password", "SCAMSIGNALS_DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "SCAMSIGNALS_DATABASE_DBNAME")
	v.BindEnv("database.sslmode", "SCAMSIGNALS_DATABASE_SSLMODE")
	v.BindEnv("checker.feed_url", "SCAMSIGNALS_CHECKER_FEED_URL")
	v.BindEnv("app.environment", "SCAMSIGNALS_APP_ENVIRONMENT")

	// Read config file; defaults carry the load when none is present
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads configuration with default path
func LoadDefault() (*Config, error) {
	return Load("")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "scamsignals")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "scamsignals")
	v.SetDefault("database.dbname", "scamsignals")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.schema", "public")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.key_prefix", "scamsignals:")

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.max_age", 300)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("checker.enabled", true)
	v.SetDefault("checker.feed_url", "https://openphish.com/feed.txt")
	v.SetDefault("checker.refresh_interval", 4*time.Hour)
	v.SetDefault("checker.fetch_timeout", 60*time.Second)

	def := DefaultExtraction()
	v.SetDefault("extraction.suspicious_tlds", def.SuspiciousTLDs)
	v.SetDefault("extraction.url_shorteners", def.URLShorteners)
	v.SetDefault("extraction.known_brands", def.KnownBrands)
	v.SetDefault("extraction.min_phone_digits", def.MinPhoneDigits)
	v.SetDefault("extraction.max_domain_hyphens", def.MaxDomainHyphens)
	v.SetDefault("extraction.new_domain_threshold_days", def.NewDomainThresholdDays)
	v.SetDefault("extraction.low_engagement_rate", def.LowEngagementRate)
	v.SetDefault("extraction.high_engagement_rate", def.HighEngagementRate)
}
