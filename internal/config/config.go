package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Centralized billing-cycle defaults. A card that supplies no cycle
// configuration closes on the 5th and is due on the 10th; no other component
// may re-derive these values.
const (
	DefaultClosingDay = 5
	DefaultDueDay     = 10
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Billing  BillingConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// BillingConfig carries the fallback cycle configuration applied to cards
// without their own closing/due day.
type BillingConfig struct {
	DefaultClosingDay int
	DefaultDueDay     int
}

func Load() *Config {
	// .env is optional; absence is the normal case outside local development.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "fintrack_user"),
			Password:        getEnv("DB_PASSWORD", "fintrack_password"),
			Name:            getEnv("DB_NAME", "fintrack_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Billing: BillingConfig{
			DefaultClosingDay: getIntEnv("BILLING_DEFAULT_CLOSING_DAY", DefaultClosingDay),
			DefaultDueDay:     getIntEnv("BILLING_DEFAULT_DUE_DAY", DefaultDueDay),
		},
	}

	if err := config.Billing.Validate(); err != nil {
		log.Fatal("Invalid billing configuration:", err)
	}

	return config
}

// Validate rejects out-of-range cycle defaults instead of clamping them; a
// silently shifted cycle moves real money calculations.
func (b *BillingConfig) Validate() error {
	if b.DefaultClosingDay < 1 || b.DefaultClosingDay > 31 {
		return fmt.Errorf("BILLING_DEFAULT_CLOSING_DAY must be between 1 and 31, got %d", b.DefaultClosingDay)
	}
	if b.DefaultDueDay < 1 || b.DefaultDueDay > 31 {
		return fmt.Errorf("BILLING_DEFAULT_DUE_DAY must be between 1 and 31, got %d", b.DefaultDueDay)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
