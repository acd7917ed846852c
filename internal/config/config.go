// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Catalog     CatalogConfig
	Session     SessionConfig
	Store       StoreConfig
	Frontend    FrontendConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

// CatalogConfig selects and configures the catalog source. Source is either
// "supabase" (PostgREST over HTTP, the hosted store backend) or "postgres"
// (a direct read of the same schema).
type CatalogConfig struct {
	Source        string
	SupabaseURL   string
	SupabaseKey   string
	FetchTimeout  int // in seconds
	DefaultImage  string
	FallbackColor string
	LoadOnStartup bool
}

type SessionConfig struct {
	SecretKey  string
	TokenTTL   int // in hours
	CookieName string
}

type StoreConfig struct {
	PageSize         int
	FreeShippingOver float64
	FlatShippingRate float64
	SalePriceCeiling float64
}

type FrontendConfig struct {
	BaseURL string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "storefront"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		Catalog: CatalogConfig{
			Source:        getEnv("CATALOG_SOURCE", "supabase"),
			SupabaseURL:   getEnv("SUPABASE_URL", ""),
			SupabaseKey:   getEnv("SUPABASE_ANON_KEY", ""),
			FetchTimeout:  getEnvAsInt("CATALOG_FETCH_TIMEOUT", 15),
			DefaultImage:  getEnv("CATALOG_DEFAULT_IMAGE", ""),
			FallbackColor: getEnv("CATALOG_FALLBACK_COLOR", "#CCCCCC"),
			LoadOnStartup: getEnvAsBool("CATALOG_LOAD_ON_STARTUP", true),
		},
		Session: SessionConfig{
			SecretKey:  getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TokenTTL:   getEnvAsInt("SESSION_TOKEN_TTL", 24), // 24 hours
			CookieName: getEnv("SESSION_COOKIE_NAME", "storefront_session"),
		},
		Store: StoreConfig{
			PageSize:         getEnvAsInt("STORE_PAGE_SIZE", 12),
			FreeShippingOver: getEnvAsFloat("STORE_FREE_SHIPPING_OVER", 150.0),
			FlatShippingRate: getEnvAsFloat("STORE_FLAT_SHIPPING_RATE", 25.0),
			SalePriceCeiling: getEnvAsFloat("STORE_SALE_PRICE_CEILING", 150.0),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Session.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("session secret key must be changed in production")
	}

	switch c.Catalog.Source {
	case "supabase":
		if c.Catalog.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required when CATALOG_SOURCE is supabase")
		}
	case "postgres":
		if c.Database.Password == "" && c.Environment == "production" {
			return fmt.Errorf("database password is required in production")
		}
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	if c.Store.PageSize < 1 {
		return fmt.Errorf("store page size must be at least 1")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
