package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Security  SecurityConfig
	Reports   ReportsConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
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

// AuthConfig describes how access tokens from the hosted identity
// provider are verified. DevPrivateKey is only set when a keypair was
// generated locally for development.
type AuthConfig struct {
	Issuer        string
	Audience      string
	PublicKey     *rsa.PublicKey
	DevPrivateKey *rsa.PrivateKey
	ClockSkew     time.Duration
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	InvitationTTL      time.Duration
}

type ReportsConfig struct {
	Timezone string
}

type SchedulerConfig struct {
	Enabled            bool
	BalanceRefreshCron string
	AuditRetentionCron string
	AuditRetention     time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "church_user"),
			Password:        getEnv("DB_PASSWORD", "church_password"),
			Name:            getEnv("DB_NAME", "church_admin"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Auth: AuthConfig{
			Issuer:    getEnv("AUTH_ISSUER", "https://auth.church-admin.local/"),
			Audience:  getEnv("AUTH_AUDIENCE", "church-admin-api"),
			ClockSkew: getDurationEnv("AUTH_CLOCK_SKEW", 30*time.Second),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
			InvitationTTL:      getDurationEnv("INVITATION_TTL", 7*24*time.Hour),
		},
		Reports: ReportsConfig{
			Timezone: getEnv("REPORT_TIMEZONE", "America/Argentina/Buenos_Aires"),
		},
		Scheduler: SchedulerConfig{
			Enabled:            getBoolEnv("SCHEDULER_ENABLED", true),
			BalanceRefreshCron: getEnv("BALANCE_REFRESH_CRON", "0 */15 * * * *"),
			AuditRetentionCron: getEnv("AUDIT_RETENTION_CRON", "0 0 3 * * *"),
			AuditRetention:     getDurationEnv("AUDIT_RETENTION", 5*365*24*time.Hour),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadKeyErr error
	config.Auth.PublicKey, config.Auth.DevPrivateKey, loadKeyErr = config.loadAuthKeys()
	if loadKeyErr != nil {
		log.Fatal("Failed to load identity provider key:", loadKeyErr)
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Location resolves the report time zone, falling back to UTC.
func (c *ReportsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("WARNING: unknown REPORT_TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
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

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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

// loadAuthKeys loads the identity provider's RSA public key.
// Priority order:
// 1. AUTH_PUBLIC_KEY (base64 PEM) is used in every environment
// 2. In production a missing key is an error
// 3. Elsewhere a keypair is generated so tokens can be minted locally
func (c *Config) loadAuthKeys() (*rsa.PublicKey, *rsa.PrivateKey, error) {
	publicKeyB64 := os.Getenv("AUTH_PUBLIC_KEY")

	if publicKeyB64 != "" {
		log.Println("Loading identity provider public key from environment")
		publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode AUTH_PUBLIC_KEY: %w", err)
		}
		publicKey, err := LoadRSAPublicKey(publicKeyBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
		}
		return publicKey, nil, nil
	}

	if c.IsProduction() {
		return nil, nil, errors.New("AUTH_PUBLIC_KEY environment variable must be set in production environments")
	}

	log.Println("Development environment: generating a local RSA keypair for access tokens (set AUTH_PUBLIC_KEY to use the identity provider)")
	privateKey, publicKey, err := GenerateRSAKeyPair()
	if err != nil {
		return nil, nil, err
	}
	return publicKey, privateKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// LoadRSAPublicKey loads an RSA public key from PEM format
func LoadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
