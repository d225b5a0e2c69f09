package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Bootstrap  BootstrapConfig
	Commerce   CommerceConfig
	Shiprocket ShiprocketConfig
	GST        GSTConfig
	Cache      CacheConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	SMTP       SMTPConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

// BootstrapConfig configures the local fallback admin used before any
// sub-admin exists upstream. The password is stored as a bcrypt hash.
type BootstrapConfig struct {
	AdminEmail        string
	AdminPasswordHash string
}

// CommerceConfig points at the upstream commerce REST API. The gateway
// authenticates service-to-service with OAuth2 client credentials.
type CommerceConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Timeout      time.Duration
}

type ShiprocketConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type GSTConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	TTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "shopsphere-admin")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "shopsphere_admin")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("BOOTSTRAP_ADMIN_EMAIL", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("COMMERCE_BASE_URL", "http://localhost:9000")
	viper.SetDefault("COMMERCE_CLIENT_ID", "")
	viper.SetDefault("COMMERCE_CLIENT_SECRET", "")
	viper.SetDefault("COMMERCE_TOKEN_URL", "")
	viper.SetDefault("COMMERCE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SHIPROCKET_BASE_URL", "https://apiv2.shiprocket.in")
	viper.SetDefault("SHIPROCKET_TOKEN", "")
	viper.SetDefault("SHIPROCKET_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GST_BASE_URL", "http://localhost:9100")
	viper.SetDefault("GST_TIMEOUT_SECONDS", 10)
	viper.SetDefault("CACHE_TTL_SECONDS", 60)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM_NAME", "ShopSphere")
	viper.SetDefault("SMTP_FROM_EMAIL", "")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		Bootstrap: BootstrapConfig{
			AdminEmail:        viper.GetString("BOOTSTRAP_ADMIN_EMAIL"),
			AdminPasswordHash: viper.GetString("BOOTSTRAP_ADMIN_PASSWORD_HASH"),
		},
		Commerce: CommerceConfig{
			BaseURL:      viper.GetString("COMMERCE_BASE_URL"),
			ClientID:     viper.GetString("COMMERCE_CLIENT_ID"),
			ClientSecret: viper.GetString("COMMERCE_CLIENT_SECRET"),
			TokenURL:     viper.GetString("COMMERCE_TOKEN_URL"),
			Timeout:      time.Duration(viper.GetInt("COMMERCE_TIMEOUT_SECONDS")) * time.Second,
		},
		Shiprocket: ShiprocketConfig{
			BaseURL: viper.GetString("SHIPROCKET_BASE_URL"),
			Token:   viper.GetString("SHIPROCKET_TOKEN"),
			Timeout: time.Duration(viper.GetInt("SHIPROCKET_TIMEOUT_SECONDS")) * time.Second,
		},
		GST: GSTConfig{
			BaseURL: viper.GetString("GST_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("GST_TIMEOUT_SECONDS")) * time.Second,
		},
		Cache: CacheConfig{
			TTL: time.Duration(viper.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		SMTP: SMTPConfig{
			Host:      viper.GetString("SMTP_HOST"),
			Port:      viper.GetInt("SMTP_PORT"),
			Username:  viper.GetString("SMTP_USERNAME"),
			Password:  viper.GetString("SMTP_PASSWORD"),
			FromName:  viper.GetString("SMTP_FROM_NAME"),
			FromEmail: viper.GetString("SMTP_FROM_EMAIL"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
