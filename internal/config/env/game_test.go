package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
game:
  case_a: [10, 10, 15, 30, 50]
  case_b: [10, 25, 65]
  tax_rate: 0.10
  estimate_days: [10, 20, 30, 60, 90]
  sessions_per_day: 1
`)

	cfg, err := NewGameConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 10, 15, 30, 50}, cfg.CaseA())
	assert.Equal(t, []int{10, 25, 65}, cfg.CaseB())
	assert.Equal(t, 0.10, cfg.TaxRate())
	assert.Equal(t, []int{10, 20, 30, 60, 90}, cfg.EstimateDays())
	assert.Equal(t, 1, cfg.SessionsPerDay())
}

func TestNewGameConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
game:
  case_a: [10, 10, 15, 30, 50]
  case_b: [10, 25, 65]
  tax_rate: 0.10
`)

	cfg, err := NewGameConfigFromYAML(path)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 20, 30, 60, 90}, cfg.EstimateDays())
	assert.Equal(t, 1, cfg.SessionsPerDay())
}

func TestNewGameConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"пустая таблица", "game:\n  case_a: []\n  case_b: [10, 25, 65]\n  tax_rate: 0.1\n"},
		{"отрицательный процент", "game:\n  case_a: [10, -5]\n  case_b: [10, 25]\n  tax_rate: 0.1\n"},
		{"разные первые проценты", "game:\n  case_a: [20, 10]\n  case_b: [10, 25]\n  tax_rate: 0.1\n"},
		{"налог вне диапазона", "game:\n  case_a: [10, 10]\n  case_b: [10, 25]\n  tax_rate: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameConfigFromYAML(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestNewGameConfigMissingFile(t *testing.T) {
	_, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
