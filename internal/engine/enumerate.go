package engine

// Enumerate перебирает все допустимые завершенные последовательности
// результатов. Правила ветвления те же, что у живой сессии: первый раунд
// выбирает Case, победа после первого раунда завершает последовательность,
// равно как и исчерпание таблицы процентов. Ни одна последовательность
// не является префиксом другой
func Enumerate(sch Schedules) [][]Outcome {
	var sequences [][]Outcome

	var rec func(seq []Outcome)
	rec = func(seq []Outcome) {
		if len(seq) == 0 {
			rec([]Outcome{Win})
			rec([]Outcome{Lose})
			return
		}

		// Победа после первого раунда - терминальное состояние
		if seq[len(seq)-1] == Win && len(seq) > 1 {
			sequences = append(sequences, append([]Outcome(nil), seq...))
			return
		}

		maxLen := len(sch.ForCase(caseFor(seq[0])))
		if len(seq) >= maxLen {
			sequences = append(sequences, append([]Outcome(nil), seq...))
			return
		}

		rec(append(append([]Outcome(nil), seq...), Win))
		rec(append(append([]Outcome(nil), seq...), Lose))
	}

	rec(nil)

	// Дедупликация на всякий случай: генерация и так не дает повторов
	seen := make(map[string]struct{}, len(sequences))
	unique := sequences[:0]
	for _, s := range sequences {
		key := SequenceString(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, s)
	}

	return unique
}
