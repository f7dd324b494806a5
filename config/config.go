package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP Password
	AdminEmail  string // Receives new inquiry notifications

	GatewayApiURL string // Payment gateway base URL
	GatewayApiKey string

	// Fallback contact channels offered when inquiry submission fails twice
	FallbackEmail    string
	FallbackWhatsApp string
	FallbackFormURL  string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
		AdminEmail:  getEnv("ADMIN_EMAIL", "admin@techverse.academy"),

		GatewayApiURL: getEnv("GATEWAY_API_URL", "https://api.gateway.techverse.academy/v1"),
		GatewayApiKey: getEnv("GATEWAY_API_KEY", "defaultSecret"),

		FallbackEmail:    getEnv("FALLBACK_EMAIL", "hello@techverse.academy"),
		FallbackWhatsApp: getEnv("FALLBACK_WHATSAPP", "https://wa.me/919120984300"),
		FallbackFormURL:  getEnv("FALLBACK_FORM_URL", "https://forms.gle/qUh9ZwGpM8fBagcn9"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GatewayApiKey == "defaultSecret" {
		log.Println("Warning: Using default GATEWAY_API_KEY. Payment reconciliation will fail.")
	}
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
