package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/paychain/paychain/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Daraja config
	configs.Daraja.Environment = GetEnv("DARAJA_ENVIRONMENT", "sandbox")
	configs.Daraja.BaseURL = GetEnv("DARAJA_BASE_URL", "")
	configs.Daraja.ConsumerKey = GetEnv("DARAJA_CONSUMER_KEY", "")
	configs.Daraja.ConsumerSecret = GetEnv("DARAJA_CONSUMER_SECRET", "")
	configs.Daraja.Shortcode = GetEnv("DARAJA_SHORTCODE", "174379")
	configs.Daraja.Passkey = GetEnv("DARAJA_PASSKEY", "")
	configs.Daraja.CallbackURL = GetEnv("DARAJA_CALLBACK_URL", "")

	// Sandbox simulator config
	configs.Sandbox.ChargeDelayMs = GetEnvAsInt("SANDBOX_CHARGE_DELAY_MS", 3000)
	configs.Sandbox.ChargeSuccessRate = GetEnvAsFloat("SANDBOX_CHARGE_SUCCESS_RATE", 0.8)
	configs.Sandbox.PayoutDelayMs = GetEnvAsInt("SANDBOX_PAYOUT_DELAY_MS", 5000)
	configs.Sandbox.PayoutSuccessRate = GetEnvAsFloat("SANDBOX_PAYOUT_SUCCESS_RATE", 0.9)

	// Checkout config
	configs.Checkout.AppURL = GetEnv("CHECKOUT_APP_URL", "https://pay.paychain.africa")

	// Webhook config
	configs.Webhook.TimeoutSeconds = GetEnvAsInt("WEBHOOK_TIMEOUT_SECONDS", 10)
	configs.Webhook.MaxResponseBody = GetEnvAsInt("WEBHOOK_MAX_RESPONSE_BODY", 1000)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
