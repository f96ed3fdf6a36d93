package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type API struct {
	BaseURL string
	Timeout time.Duration
}

type Session struct {
	Secret string
	Name   string
	MaxAge time.Duration
	Secure bool
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	URLExpiry  time.Duration
}

// Enabled reports whether certificate links can be generated.
func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type Config struct {
	ServerPort   int
	API          API
	Session      Session
	MinIO        MinIO
	JWTSecretKey string
	PageSize     int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseDuration accepts Go durations and a "<n>d" day suffix
func parseDuration(value string, fallback time.Duration) time.Duration {
	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil && n >= 0 {
			return time.Duration(n) * 24 * time.Hour
		}
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadAPI() API {
	return API{
		BaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000/api"), "/"),
		Timeout: parseDuration(getEnv("API_TIMEOUT", "0s"), 0),
	}
}

func LoadSession() Session {
	return Session{
		Secret: getEnv("SESSION_SECRET", ""),
		Name:   getEnv("SESSION_NAME", "app-session"),
		MaxAge: parseDuration(getEnv("SESSION_MAX_AGE", "24h"), 24*time.Hour),
		Secure: getEnvBool("SESSION_SECURE", false),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "certificates"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		URLExpiry:  parseDuration(getEnv("MINIO_URL_EXPIRY", "1d"), 24*time.Hour),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	pageSize := getEnvAsInt("PAGE_SIZE", 10)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	return &Config{
		ServerPort:   getEnvAsInt("SERVER_PORT", 3000),
		API:          LoadAPI(),
		Session:      LoadSession(),
		MinIO:        LoadMinIO(),
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		PageSize:     pageSize,
	}
}
