package main

import (
	"fmt"
	"os"

	"elephant_backend/internal/config/env"
	"elephant_backend/internal/engine"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configPath string
	balance    float64
	days       int
	sessions   int
	strategy   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "projection",
		Short:         "Прогнозы прибыли по таблицам ставок без запуска сервера",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "путь к файлу конфигурации")
	rootCmd.PersistentFlags().Float64Var(&balance, "balance", 1000, "стартовый баланс")

	forecastCmd := &cobra.Command{
		Use:   "forecast",
		Short: "Компаундинг дневной прибыли на заданный горизонт",
		RunE:  runForecast,
	}
	forecastCmd.Flags().IntVar(&days, "days", 30, "горизонт в днях")
	forecastCmd.Flags().IntVar(&sessions, "sessions", 1, "сессий в день")
	forecastCmd.Flags().StringVar(&strategy, "strategy", "weighted", "worst или weighted")

	sequencesCmd := &cobra.Command{
		Use:   "sequences",
		Short: "Все исходы одной сессии для заданного баланса",
		RunE:  runSequences,
	}

	rootCmd.AddCommand(forecastCmd, sequencesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSchedules читает таблицы из config.yaml,
// при отсутствии файла берет значения по умолчанию
func loadSchedules() engine.Schedules {
	cfg, err := env.NewGameConfigFromYAML(configPath)
	if err != nil {
		color.Yellow("конфигурация %s недоступна (%v), использую значения по умолчанию", configPath, err)
		return engine.DefaultSchedules()
	}

	return engine.Schedules{
		CaseA:   cfg.CaseA(),
		CaseB:   cfg.CaseB(),
		TaxRate: cfg.TaxRate(),
	}
}

func runForecast(_ *cobra.Command, _ []string) error {
	var useWorst bool
	switch strategy {
	case "worst":
		useWorst = true
	case "weighted":
		useWorst = false
	default:
		return fmt.Errorf("unknown strategy %q", strategy)
	}

	sch := loadSchedules()
	final, history, err := engine.Compound(sch, balance, days, sessions, useWorst)
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("Прогноз на %d дней, стратегия %s, баланс %d\n", days, strategy, engine.NearestTen(balance))

	for _, day := range history {
		delta := day.EndBalance - day.StartBalance
		line := fmt.Sprintf("день %3d: %8d -> %8d (%+d)", day.Day, day.StartBalance, day.EndBalance, delta)
		if delta < 0 {
			color.Red(line)
		} else {
			color.Green(line)
		}
	}

	header.Printf("Итог: %d\n", final)
	return nil
}

func runSequences(_ *cobra.Command, _ []string) error {
	sch := loadSchedules()
	base := engine.NearestTen(balance)
	if base <= 0 {
		return engine.ErrInvalidBalance
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("Исходы сессии для баланса %d\n", base)

	for _, seq := range engine.Enumerate(sch) {
		profit := engine.Simulate(sch, base, seq)
		line := fmt.Sprintf("%-6s %+8d  %s", engine.SequenceString(seq), profit, engine.Remark(sch, base, seq))
		if profit < 0 {
			color.Red(line)
		} else {
			color.Green(line)
		}
	}
	return nil
}
