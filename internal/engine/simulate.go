package engine

// Simulate проигрывает последовательность результатов по тем же правилам
// начисления, что и живая сессия, и возвращает итоговую чистую прибыль.
// Округление применяется после каждого начисления, как в Session.Result.
// Чистая функция: одинаковые аргументы всегда дают одинаковый результат.
//
// Правила остановки соблюдаются и здесь: если на вход пришла
// последовательность длиннее терминальной, хвост игнорируется
func Simulate(sch Schedules, baseBalance int, outcomes []Outcome) int {
	if len(outcomes) == 0 {
		return 0
	}

	percentages := sch.ForCase(caseFor(outcomes[0]))

	var profit int
	for i, res := range outcomes {
		roundNo := i + 1
		if roundNo > len(percentages) {
			break
		}

		invest := PercentOf(baseBalance, percentages[roundNo-1])
		if res == Win {
			gross := float64(invest)
			tax := gross * sch.TaxRate
			profit = NearestTen(float64(profit) + gross - tax)
			// Победа после первого раунда завершила бы живую сессию
			if roundNo > 1 {
				break
			}
		} else {
			profit = NearestTen(float64(profit - invest))
		}
	}

	return profit
}

// SimulateAll считает прибыль для каждой допустимой последовательности
// при данном балансе
func SimulateAll(sch Schedules, baseBalance int) []int {
	seqs := Enumerate(sch)
	profits := make([]int, 0, len(seqs))
	for _, s := range seqs {
		profits = append(profits, Simulate(sch, baseBalance, s))
	}
	return profits
}
