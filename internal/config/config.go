package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port        string
	Environment string

	DBDriver    string
	DatabaseURL string
	SQLitePath  string

	RedisURL string

	JWTSecret string
	JWTExpiry time.Duration

	AdminEmail        string
	AdminPasswordHash string

	StorageDriver string

	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	LocalStorageDir string
	PublicBaseURL   string

	MaxUploadBytes   int64
	AllowedMimeTypes []string

	CORSOrigins string

	ResendAPIKey string
	FromEmail    string
	NotifyEmail  string
}

// defaultAllowedMimeTypes covers the image and video subtypes the portfolio accepts.
var defaultAllowedMimeTypes = []string{
	"image/jpeg", "image/jpg", "image/png", "image/webp",
	"image/gif", "image/bmp", "image/tiff", "image/svg+xml",
	"video/mp4", "video/quicktime", "video/x-msvideo", "video/webm",
	"video/avi", "video/mov", "video/wmv", "video/flv",
	"video/mkv", "video/3gp", "video/m4v",
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "./database.sqlite"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: getDurationEnv("JWT_EXPIRY", 24*time.Hour),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@photography.com"),
		AdminPasswordHash: loadAdminPasswordHash(),

		StorageDriver: getEnv("STORAGE_DRIVER", "minio"),

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "lumiere-media"),
		MinIOUseSSL:         getBoolEnv("MINIO_USE_SSL", false),
		MinIOPublicUseSSL:   getBoolEnv("MINIO_PUBLIC_USE_SSL", true),

		LocalStorageDir: getEnv("LOCAL_STORAGE_DIR", "./uploads"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		MaxUploadBytes:   getInt64Env("MAX_UPLOAD_SIZE_MB", 50) * 1024 * 1024,
		AllowedMimeTypes: getListEnv("ALLOWED_MIME_TYPES", defaultAllowedMimeTypes),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@example.com"),
		NotifyEmail:  getEnv("NOTIFY_EMAIL", getEnv("ADMIN_EMAIL", "admin@photography.com")),
	}
}

// MimeAllowed reports whether a declared content type is in the configured allow-list.
func (c *Config) MimeAllowed(mimeType string) bool {
	for _, allowed := range c.AllowedMimeTypes {
		if allowed == mimeType {
			return true
		}
	}
	return false
}

// loadAdminPasswordHash prefers a pre-computed bcrypt hash. A plaintext
// ADMIN_PASSWORD is accepted as a fallback and hashed once here, so the
// plaintext is never kept or compared directly.
func loadAdminPasswordHash() string {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return hash
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Warning: failed to hash ADMIN_PASSWORD: %v", err)
			return ""
		}
		return string(hash)
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		list := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				list = append(list, trimmed)
			}
		}
		if len(list) > 0 {
			return list
		}
	}
	return defaultValue
}
