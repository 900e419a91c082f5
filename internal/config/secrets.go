package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// populated by LoadEnvironment; tests may set them directly
var (
	AuthBypass        bool
	AuthJWTSecret     string
	TrustProxyHeaders bool
	RedisPassword     string
	MinioEndpoint     string
	MinioAccessKey    string
	MinioSecretKey    string
	MinioUseSSL       bool
	MinioBucket       = DefaultBucket

	envOnce sync.Once
)

// LoadEnvironment reads .env (if present) and the process environment once.
func LoadEnvironment() {
	envOnce.Do(func() {
		_ = godotenv.Load()

		AuthBypass = boolEnv("AUTH_BYPASS", false)
		AuthJWTSecret = os.Getenv("AUTH_JWT_SECRET")
		TrustProxyHeaders = boolEnv("TRUST_PROXY_HEADERS", false)
		RedisPassword = os.Getenv("REDIS_PASSWORD")
		MinioEndpoint = os.Getenv("MINIO_ENDPOINT")
		MinioAccessKey = os.Getenv("MINIO_ACCESS_KEY")
		MinioSecretKey = os.Getenv("MINIO_SECRET_KEY")
		MinioUseSSL = boolEnv("MINIO_USE_SSL", false)
		if bucket := os.Getenv("MINIO_BUCKET"); bucket != "" {
			MinioBucket = bucket
		}
	})
}

// EnvOrDefault returns the environment value for key, or fallback when unset.
func EnvOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
