package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ChangefeedMemory   = "memory"
	ChangefeedPostgres = "postgres"
	ChangefeedRedis    = "redis"
)

var (
	JwtSecret          string
	Issuer             string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	LogLevel           string
	LogFormat          string
	ChangefeedDriver   string
	ChangefeedChannel  string
	RedisAddr          string
	RateLimitPerMinute int
	CategoriesFile     string
	SubscriptionBuffer int
	AllowedOrigins     []string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("Issuer", "ticketboard")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "ticketboard")
	ServerPort = getEnv("SERVER_PORT", "8080")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "text")
	ChangefeedDriver = getEnv("CHANGEFEED_DRIVER", ChangefeedPostgres)
	ChangefeedChannel = getEnv("CHANGEFEED_CHANNEL", "row_changes")
	RedisAddr = getEnv("REDIS_ADDR", "127.0.0.1:6379")
	RateLimitPerMinute = getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30)
	CategoriesFile = getEnv("TICKET_CATEGORIES_FILE", "")
	SubscriptionBuffer = getEnvAsInt("SUBSCRIPTION_BUFFER", 64)
	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))

	switch ChangefeedDriver {
	case ChangefeedMemory, ChangefeedPostgres, ChangefeedRedis:
	default:
		log.Fatalf("CHANGEFEED_DRIVER must be one of memory, postgres, redis (got %q)", ChangefeedDriver)
	}
	if RateLimitPerMinute <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if SubscriptionBuffer <= 0 {
		log.Fatal("SUBSCRIPTION_BUFFER must be greater than 0")
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
