package engine

// Outcome - результат одного раунда
type Outcome string

const (
	Win  Outcome = "W"
	Lose Outcome = "L"
)

// Case - выбранная таблица процентов.
// Определяется один раз по результату первого раунда и больше не меняется
type Case int

const (
	CaseUnset Case = iota
	// CaseA - длинная таблица, выбирается при победе в первом раунде
	CaseA
	// CaseB - короткая таблица, выбирается при поражении в первом раунде
	CaseB
)

// Schedules - неизменяемые таблицы процентов ставок и налоговая ставка.
// Первый процент у обеих таблиц одинаковый, поэтому ставку первого раунда
// можно посчитать до того, как известен Case
type Schedules struct {
	CaseA   []int
	CaseB   []int
	TaxRate float64
}

// DefaultSchedules возвращает стандартные таблицы: A = 5 раундов, B = 3 раунда,
// налог 10% с выигрыша
func DefaultSchedules() Schedules {
	return Schedules{
		CaseA:   []int{10, 10, 15, 30, 50},
		CaseB:   []int{10, 25, 65},
		TaxRate: 0.10,
	}
}

// ForCase возвращает таблицу процентов для выбранного Case
func (s Schedules) ForCase(c Case) []int {
	if c == CaseB {
		return s.CaseB
	}
	return s.CaseA
}

// caseFor определяет Case по результату первого раунда
func caseFor(first Outcome) Case {
	if first == Win {
		return CaseA
	}
	return CaseB
}
