package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"mealmentor/internal/nutrition"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "REDIS_URL", "CORS_ALLOWED_ORIGINS", "TARGET_CALORIES"} {
		t.Setenv(key, "")
	}

	cfg := Load(filepath.Join(t.TempDir(), "none.env"))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Zero(t, cfg.Targets.Calories)
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nTARGET_PROTEIN=120\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n"), 0o600))
	t.Setenv("PORT", "")
	t.Setenv("TARGET_PROTEIN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	os.Unsetenv("PORT")
	os.Unsetenv("TARGET_PROTEIN")
	os.Unsetenv("CORS_ALLOWED_ORIGINS")

	cfg := Load(path)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 120.0, cfg.Targets.Protein)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestDailyTargets(t *testing.T) {
	defaults := nutrition.Macros{Calories: 2000, Protein: 150, Carbs: 225, Fat: 65}
	cfg := &Config{Targets: nutrition.Macros{Calories: 1800}}

	got := cfg.DailyTargets(defaults)

	assert.Equal(t, nutrition.Macros{Calories: 1800, Protein: 150, Carbs: 225, Fat: 65}, got)
}

func TestInvalidTargetIsIgnored(t *testing.T) {
	t.Setenv("TARGET_FAT", "lots")
	cfg := Load(filepath.Join(t.TempDir(), "none.env"))
	assert.Zero(t, cfg.Targets.Fat)
}

func TestInvalidTargetIsReportedOnceLoggerExists(t *testing.T) {
	t.Setenv("TARGET_CALORIES", "abc")
	t.Setenv("TARGET_CARBS", "-5")
	t.Setenv("TARGET_PROTEIN", "")
	t.Setenv("TARGET_FAT", "")
	cfg := Load(filepath.Join(t.TempDir(), "none.env"))

	core, logs := observer.New(zap.WarnLevel)
	cfg.LogWarnings(zap.New(core))

	assert.Zero(t, cfg.Targets.Calories)
	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Ignoring invalid numeric setting", entry.Message)
	assert.Equal(t, "TARGET_CALORIES", entry.ContextMap()["key"])
	assert.Equal(t, "abc", entry.ContextMap()["value"])
	assert.Equal(t, "TARGET_CARBS", logs.All()[1].ContextMap()["key"])
}
