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
	CORS       CORSConfig
	RateLimit  RateLimitConfig
	PrintRelay PrintRelayConfig
	Receipt    ReceiptConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret           string
	ExpiryHours      time.Duration
	RefreshExpiry    time.Duration
	PINExpiryMinutes time.Duration
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

type PrintRelayConfig struct {
	// Address of the external print-relay process, e.g. "127.0.0.1:7070".
	// Empty disables printing entirely.
	Address string
	// QueueSize is the print job buffer; jobs beyond it are dropped.
	QueueSize int
}

type ReceiptConfig struct {
	// Width in characters: 32 for 58mm paper, 48 for 80mm.
	Width int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "tavolo-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_PATH", "./tavolo.db")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("JWT_PIN_EXPIRY_MINUTES", 720)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINT_RELAY_ADDRESS", "")
	viper.SetDefault("PRINT_RELAY_QUEUE_SIZE", 64)
	viper.SetDefault("RECEIPT_WIDTH", 32)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		JWT: JWTConfig{
			Secret:           viper.GetString("JWT_SECRET"),
			ExpiryHours:      time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiry:    time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
			PINExpiryMinutes: time.Duration(viper.GetInt("JWT_PIN_EXPIRY_MINUTES")) * time.Minute,
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
		PrintRelay: PrintRelayConfig{
			Address:   viper.GetString("PRINT_RELAY_ADDRESS"),
			QueueSize: viper.GetInt("PRINT_RELAY_QUEUE_SIZE"),
		},
		Receipt: ReceiptConfig{
			Width: viper.GetInt("RECEIPT_WIDTH"),
		},
	}
}
