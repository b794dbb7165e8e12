package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the application needs. It is built once at
// startup and passed into constructors; nothing reads the environment after this.
type Config struct {
	AppPort       string
	AppMode       string
	MongoURI      string
	MongoDBName   string
	JWTSecret     string
	JWTExpireDays int
	FrontendURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// LoadConfig loads configuration from environment variables. JWTSecret has no
// fallback on purpose: a well-known default secret would let anyone forge
// tokens, so the API entrypoint refuses to start when it is empty.
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:       getEnv("PORT", "5000"),
		AppMode:       getEnv("APP_MODE", "debug"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGODB_DB", "web-test"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpireDays: getEnvAsInt("JWT_EXPIRE_DAYS", 7),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
