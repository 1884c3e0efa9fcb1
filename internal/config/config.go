package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	LogFile  string
	// Provider
	Provider        string
	ExchangeAPIBase string
	BaseCurrency    string
	RequestTimeout  time.Duration
	// Store
	Storage     string
	OutputFile  string
	DatabaseURL string
	// Mirror (latest-rate cache)
	Mirror        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults. The defaults are
// the fixed operating constants: quotes endpoint, BRL base, 10s timeout,
// cotacoes.csv output.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", "cotacoes.log"),
		Provider:        getEnv("PROVIDER", "http"),
		ExchangeAPIBase: getEnv("EXCHANGE_API_BASE", "https://api.exchangerate-api.com/v4/latest"),
		BaseCurrency:    getEnv("BASE_CURRENCY", "BRL"),
		RequestTimeout:  time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		Storage:         getEnv("STORAGE", "csv"),
		OutputFile:      getEnv("OUTPUT_FILE", "cotacoes.csv"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		Mirror:          getEnv("MIRROR", "none"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisTTL:        time.Duration(atoiDef(getEnv("MIRROR_TTL_MS", "3600000"), 3600000)) * time.Millisecond,
	}
}
