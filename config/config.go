package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	APIBaseURL string
	TokenFile  string

	PageSize         int
	MinDepositAmount float64
	SearchDebounceMs int
	SearchMinLength  int

	// Stub backend settings
	Port          string
	JWTKey        string
	AdminEmail    string
	AdminPassword string
	SaltRound     int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		TokenFile:  getEnv("TOKEN_FILE", defaultTokenFile()),

		PageSize:         getEnvInt("PAGE_SIZE", 50),
		MinDepositAmount: getEnvFloat("MIN_DEPOSIT_AMOUNT", 10),
		SearchDebounceMs: getEnvInt("SEARCH_DEBOUNCE_MS", 300),
		SearchMinLength:  getEnvInt("SEARCH_MIN_LENGTH", 3),

		Port:          getEnv("PORT", "8080"),
		JWTKey:        getEnv("JWT_SECRET_KEY", "defaultSecret"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		SaltRound:     getEnvInt("SALT_ROUND", 10),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// SearchDebounceDelay returns the configured debounce window as a duration.
func (c *Config) SearchDebounceDelay() time.Duration {
	return time.Duration(c.SearchDebounceMs) * time.Millisecond
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".betadmin_token"
	}
	return filepath.Join(home, ".betadmin_token")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
