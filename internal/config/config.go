package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mealmentor/internal/nutrition"
)

type Config struct {
	Port         string
	DBDriver     string
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	DBSSLMode    string
	SQLitePath   string
	RedisURL     string
	FixturesPath string
	LogLevel     string
	CORSOrigins  []string
	// Targets overrides the fixture targets field by field when set.
	Targets nutrition.Macros

	// Settings rejected while loading, reported by LogWarnings.
	Warnings []Warning
}

type Warning struct {
	Key   string
	Value string
}

// Load reads .env (if present) and the process environment.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			break
		}
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       getEnv("DB_NAME", "mealmentor"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		SQLitePath:   getEnv("SQLITE_PATH", "mealmentor.db"),
		RedisURL:     os.Getenv("REDIS_URL"),
		FixturesPath: os.Getenv("FIXTURES_PATH"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	cfg.Targets = nutrition.Macros{
		Calories: cfg.getFloat("TARGET_CALORIES"),
		Protein:  cfg.getFloat("TARGET_PROTEIN"),
		Carbs:    cfg.getFloat("TARGET_CARBS"),
		Fat:      cfg.getFloat("TARGET_FAT"),
	}
	return cfg
}

// LogWarnings reports settings Load ignored. Load runs before the logger
// exists, so callers invoke this once it is built.
func (c *Config) LogWarnings(log *zap.Logger) {
	for _, w := range c.Warnings {
		log.Warn("Ignoring invalid numeric setting", zap.String("key", w.Key), zap.String("value", w.Value))
	}
}

// DailyTargets fills any target not set in the environment from defaults.
func (c *Config) DailyTargets(defaults nutrition.Macros) nutrition.Macros {
	t := defaults
	if c.Targets.Calories > 0 {
		t.Calories = c.Targets.Calories
	}
	if c.Targets.Protein > 0 {
		t.Protein = c.Targets.Protein
	}
	if c.Targets.Carbs > 0 {
		t.Carbs = c.Targets.Carbs
	}
	if c.Targets.Fat > 0 {
		t.Fat = c.Targets.Fat
	}
	return t
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) getFloat(key string) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		c.Warnings = append(c.Warnings, Warning{Key: key, Value: raw})
		return 0
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
