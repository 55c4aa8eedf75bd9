package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	APIBaseURL  string
	APITimeout  time.Duration
	TokenStore  string // sqlite | redis
	DBSource    string
	RedisAddr   string
	RedisDB     int
	SessionTTL  time.Duration
	Timezone    string
	LogLevel    string
	CORSOrigins []string

	DevSessionID   string
	DevAccessToken string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment only")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:3000/api"),
		APITimeout:  getDuration("API_TIMEOUT", 15*time.Second),
		TokenStore:  strings.ToLower(getEnv("TOKEN_STORE", "sqlite")),
		DBSource:    getEnv("DB_SOURCE", "storefront.db"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getInt("REDIS_DB", 0),
		SessionTTL:  getDuration("SESSION_TTL", 24*time.Hour),
		Timezone:    getEnv("TIMEZONE", "Asia/Ho_Chi_Minh"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		DevSessionID:   os.Getenv("DEV_SESSION_ID"),
		DevAccessToken: os.Getenv("DEV_ACCESS_TOKEN"),
	}
}

// Location resolves TIMEZONE, falling back to the host zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("unknown TIMEZONE %q, using local time", c.Timezone)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("bad %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("bad %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
