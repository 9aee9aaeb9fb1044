package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application configuration
	AppPort  string `yaml:"APP_PORT"`
	AppEnv   string `yaml:"APP_ENV"`
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`
	SeedData bool   `yaml:"SEED_DATA"`

	// Database configuration
	DBUser         string `yaml:"DB_USER"`
	DBName         string `yaml:"DB_NAME"`
	DBPassword     string `yaml:"DB_PASSWORD"`
	DBPort         string `yaml:"DB_PORT"`
	DBHost         string `yaml:"DB_HOST"`
	DBSSLMode      string `yaml:"DB_SSLMODE"`
	DBMaxOpenConns int    `yaml:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `yaml:"DB_MAX_IDLE_CONNS"`

	// JWT configuration
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTIssuer     string `yaml:"JWT_ISSUER"`
	JWTTTLMinutes int    `yaml:"JWT_TTL_MINUTES"`

	// Nutrition provider
	NutritionAPIURL         string `yaml:"NUTRITION_API_URL"`
	NutritionTimeoutSeconds int    `yaml:"NUTRITION_TIMEOUT_SECONDS"`

	// HTTP middleware
	CORSAllowOrigins   string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitPerSecond int    `yaml:"RATE_LIMIT_PER_SECOND"`
}

var (
	configMu sync.RWMutex
	config   = defaultConfig()
)

func defaultConfig() Config {
	return Config{
		AppPort:                 "7070",
		AppEnv:                  "development",
		LogLevel:                "info",
		DBPort:                  "5432",
		DBSSLMode:               "disable",
		JWTIssuer:               "RECIPE-CATALOG",
		JWTTTLMinutes:           120,
		NutritionAPIURL:         "https://apiprovider.cphbusinessapps.dk/api/v1/ingredients/nutrition",
		NutritionTimeoutSeconds: 5,
		CORSAllowOrigins:        "*",
		RateLimitPerSecond:      10,
	}
}

// LoadConfig reads the yaml file at path on top of the defaults. A missing
// file is not fatal: defaults and environment variables still apply.
func LoadConfig(path string) {
	cfg := defaultConfig()

	// config loads before the zap logger is built, so failures go to the standard logger
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		cfg = defaultConfig()
	}

	SetConfig(cfg)
}

func SetConfig(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	config = cfg
}

// GetConfig returns the value for key. An environment variable with the
// same name takes precedence over the yaml value.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	configMu.RLock()
	defer configMu.RUnlock()

	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	case "SEED_DATA":
		return strconv.FormatBool(config.SeedData)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "DB_MAX_OPEN_CONNS":
		return strconv.Itoa(config.DBMaxOpenConns)
	case "DB_MAX_IDLE_CONNS":
		return strconv.Itoa(config.DBMaxIdleConns)
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return config.JWTIssuer
	case "JWT_TTL_MINUTES":
		return strconv.Itoa(config.JWTTTLMinutes)
	case "NUTRITION_API_URL":
		return config.NutritionAPIURL
	case "NUTRITION_TIMEOUT_SECONDS":
		return strconv.Itoa(config.NutritionTimeoutSeconds)
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "RATE_LIMIT_PER_SECOND":
		return strconv.Itoa(config.RateLimitPerSecond)
	default:
		return ""
	}
}

func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(GetConfig(key)))
	if err != nil {
		return fallback
	}
	return n
}

func GetConfigBool(key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(GetConfig(key)))
	return b
}

// GetConfigSeconds reads an integer number of seconds.
func GetConfigSeconds(key string, fallback time.Duration) time.Duration {
	n := GetConfigInt(key, -1)
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
