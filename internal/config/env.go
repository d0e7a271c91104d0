package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Data sources understood by DATA_SOURCE.
const (
	SourceMemory = "memory"
	SourceMySQL  = "mysql"
)

type Env struct {
	AppAddr string
	GinMode string

	DataSource string
	DBDSN      string

	JWTSecret     string
	JWTTTL        time.Duration
	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string
	DefaultPageSize    int
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads the process environment. A .env file (or ENV_FILE) is loaded first when present;
// variables already set in the environment win.
func LoadEnv() Env {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("warning: failed to load %s: %v", envFile, err)
		}
	}

	env := Env{
		AppAddr:       getOr("APP_ADDR", ":8080"),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DataSource:    strings.ToLower(getOr("DATA_SOURCE", SourceMemory)),
		DBDSN:         strings.TrimSpace(os.Getenv("DB_DSN")),
		JWTSecret:     getOr("JWT_SECRET", "dev-secret-change-me"),
		JWTTTL:        durationOr("JWT_TTL", 24*time.Hour),
		AdminUsername: getOr("ADMIN_USERNAME", "admin"),
		AdminPassword: getOr("ADMIN_PASSWORD", "admin123"),

		CORSAllowedOrigins: defaultOrigins,
		DefaultPageSize:    intOr("DEFAULT_PAGE_SIZE", 8),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		env.CORSAllowedOrigins = splitList(raw)
	}
	if env.DataSource != SourceMySQL {
		env.DataSource = SourceMemory
	}
	return env
}

func getOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func durationOr(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
