package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// defaultJWTSecret matches the secret the original deployment shipped
// with so the server boots without configuration. Override JWT_SECRET
// in any real environment.
const defaultJWTSecret = "your_jwt_secret_key"

type Config struct {
	ServerPort int
	JWTSecret  string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		ServerPort: getEnvInt("PORT", 3000),
		JWTSecret:  getEnv("JWT_SECRET", defaultJWTSecret),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}
