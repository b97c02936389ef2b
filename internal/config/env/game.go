package env

import (
	"fmt"
	"os"

	"elephant_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type gameYAML struct {
	Game struct {
		CaseA          []int   `yaml:"case_a"`
		CaseB          []int   `yaml:"case_b"`
		TaxRate        float64 `yaml:"tax_rate"`
		EstimateDays   []int   `yaml:"estimate_days"`
		SessionsPerDay int     `yaml:"sessions_per_day"`
	} `yaml:"game"`
}

type gameConfig struct {
	caseA          []int
	caseB          []int
	taxRate        float64
	estimateDays   []int
	sessionsPerDay int
}

// NewGameConfigFromYAML загружает игровую конфигурацию из yaml файла
// и валидирует таблицы процентов
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	g := parsed.Game
	if len(g.CaseA) == 0 || len(g.CaseB) == 0 {
		return nil, fmt.Errorf("game config: empty percentage schedule")
	}
	for _, pct := range append(append([]int(nil), g.CaseA...), g.CaseB...) {
		if pct <= 0 {
			return nil, fmt.Errorf("game config: percentages must be positive, got %d", pct)
		}
	}
	// Ставка первого раунда считается до выбора таблицы,
	// поэтому первые проценты обязаны совпадать
	if g.CaseA[0] != g.CaseB[0] {
		return nil, fmt.Errorf("game config: first round percentage must match in both schedules")
	}
	if g.TaxRate < 0 || g.TaxRate >= 1 {
		return nil, fmt.Errorf("game config: tax rate must be in [0, 1), got %v", g.TaxRate)
	}
	if len(g.EstimateDays) == 0 {
		g.EstimateDays = []int{10, 20, 30, 60, 90}
	}
	if g.SessionsPerDay < 1 {
		g.SessionsPerDay = 1
	}

	return &gameConfig{
		caseA:          g.CaseA,
		caseB:          g.CaseB,
		taxRate:        g.TaxRate,
		estimateDays:   g.EstimateDays,
		sessionsPerDay: g.SessionsPerDay,
	}, nil
}

func (cfg *gameConfig) CaseA() []int {
	return cfg.caseA
}

func (cfg *gameConfig) CaseB() []int {
	return cfg.caseB
}

func (cfg *gameConfig) TaxRate() float64 {
	return cfg.taxRate
}

func (cfg *gameConfig) EstimateDays() []int {
	return cfg.estimateDays
}

func (cfg *gameConfig) SessionsPerDay() int {
	return cfg.sessionsPerDay
}
