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
	DBName    string
	JWTKey    string
	SaltRound int

	RootURL   string // Public base URL of this server (gateway callbacks)
	ClientURL string // Frontend base URL (redirect targets)

	EmailSender string
	Password    string // SMTP Password

	StoreID       string // Payment gateway store id
	StorePassword string // Payment gateway store password
	GatewayAPIURL string // Payment gateway session endpoint

	UploadDir string

	AdminEmail    string
	AdminPassword string
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
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "coursehub"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		RootURL:   getEnv("ROOT_URL", "http://localhost:3000"),
		ClientURL: getEnv("CLIENT_URL", "http://localhost:5173"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),

		StoreID:       getEnv("SSLC_STORE_ID", ""),
		StorePassword: getEnv("SSLC_STORE_PASSWORD", ""),
		GatewayAPIURL: getEnv("SSLC_API_URL", "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"),

		UploadDir: getEnv("UPLOAD_DIR", "./public/uploads"),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.StoreID == "" || AppConfig.StorePassword == "" {
		log.Println("Warning: Payment gateway is not configured. Payment initiation will be rejected.")
	}
}

// PaymentConfigured reports whether the payment gateway credentials are present
func PaymentConfigured() bool {
	return AppConfig.StoreID != "" && AppConfig.StorePassword != ""
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
