package engine

import "math"

// DayRecord - итог одного смоделированного дня компаундинга
type DayRecord struct {
	Day            int
	StartBalance   int
	SessionProfits []int
	EndBalance     int
}

// WorstDailyProfit - худшая прибыль среди всех допустимых последовательностей
// при данном балансе
func WorstDailyProfit(sch Schedules, balance int) int {
	profits := SimulateAll(sch, balance)
	worst := math.MaxInt
	for _, p := range profits {
		if p < worst {
			worst = p
		}
	}
	return NearestTen(float64(worst))
}

// WeightedDailyProfit - консервативная дневная оценка: 80% худшего исхода
// плюс 20% среднего по остальным. Если других исходов нет, вместо среднего
// берется сам худший, чтобы не делить на ноль
func WeightedDailyProfit(sch Schedules, balance int) int {
	profits := SimulateAll(sch, balance)
	if len(profits) == 0 {
		return 0
	}

	worst := profits[0]
	for _, p := range profits {
		if p < worst {
			worst = p
		}
	}

	var sum, count int
	for _, p := range profits {
		if p != worst {
			sum += p
			count++
		}
	}

	avgOthers := worst
	if count > 0 {
		// Усечение к нулю, а не floor
		avgOthers = int(float64(sum) / float64(count))
	}

	return NearestTen(0.8*float64(worst) + 0.2*float64(avgOthers))
}

// Compound моделирует рост баланса за days дней по sessionsPerDay сессий
// в день. Дневная прибыль пересчитывается от текущего баланса на каждом шаге,
// потому что проценты привязаны к балансу: кэшировать ее между днями нельзя.
// Баланс округляется после каждого прибавления.
//
// days = 0 возвращает исходный баланс и пустую историю
func Compound(sch Schedules, balance float64, days, sessionsPerDay int, useWorst bool) (int, []DayRecord, error) {
	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance < 0 {
		return 0, nil, ErrInvalidBalance
	}
	if sessionsPerDay < 1 {
		sessionsPerDay = 1
	}

	b := NearestTen(balance)
	history := make([]DayRecord, 0, days)

	for day := 1; day <= days; day++ {
		rec := DayRecord{
			Day:            day,
			StartBalance:   b,
			SessionProfits: make([]int, 0, sessionsPerDay),
		}

		for s := 0; s < sessionsPerDay; s++ {
			var p int
			if useWorst {
				p = WorstDailyProfit(sch, b)
			} else {
				p = WeightedDailyProfit(sch, b)
			}
			rec.SessionProfits = append(rec.SessionProfits, p)
			b = NearestTen(float64(b + p))
		}

		rec.EndBalance = b
		history = append(history, rec)
	}

	return b, history, nil
}
