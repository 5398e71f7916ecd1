package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the application configuration, read once at startup.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Inspector credential for POST /auth/token.
	InspectorKey string

	// Optional YAML file overriding the embedded district tables.
	DistrictConfigPath string

	ImageryBaseURL string
	ImageryAPIKey  string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	NominatimURL    string
	GeocodeCacheMax int
	GeocodeCacheTTL time.Duration

	// Reporting policy for high-risk districts with no organic detections.
	GuaranteedDetection bool
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", ":8080"),
		DBPath:              getEnv("DB_PATH", "./data/minewatch.db"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me-in-production"),
		InspectorKey:        getEnv("INSPECTOR_KEY", ""),
		DistrictConfigPath:  getEnv("DISTRICT_CONFIG_PATH", ""),
		ImageryBaseURL:      getEnv("IMAGERY_BASE_URL", ""),
		ImageryAPIKey:       getEnv("IMAGERY_API_KEY", ""),
		MinioEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey:      getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey:      getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:         getEnv("MINIO_BUCKET", "minewatch-artifacts"),
		MinioUseSSL:         getBool("MINIO_USE_SSL", false),
		NominatimURL:        getEnv("NOMINATIM_URL", ""),
		GeocodeCacheMax:     getInt("GEOCODE_CACHE_MAX", 512),
		GeocodeCacheTTL:     getDuration("GEOCODE_CACHE_TTL", time.Hour),
		GuaranteedDetection: getBool("GUARANTEED_DETECTION", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
