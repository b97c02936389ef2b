package engine

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBalance - баланс не число, отрицательный или бесконечный.
	// Состояние сессии при этой ошибке не меняется
	ErrInvalidBalance = errors.New("invalid balance")
	// ErrInvalidTransition - результат прислан без активной сессии
	// или после ее завершения
	ErrInvalidTransition = errors.New("invalid session transition")
)

// Session - состояние одной игровой сессии. Принадлежит ровно одному игроку
// и никогда не разделяется между игроками. Базовый баланс фиксируется при
// старте и не меняется до конца сессии
type Session struct {
	BaseBalance int
	Round       int
	Case        Case
	TotalStaked int
	NetProfit   int
	Wins        int
	Losses      int
	Sequence    []Outcome
	Terminal    bool

	schedules Schedules
}

// RoundAdvance - переход к следующему раунду: номер и заранее
// объявленная ставка
type RoundAdvance struct {
	NextRound int
	NextStake int
}

// Summary - итог завершенной сессии.
// NetProfitAfterTax - алиас для отображения: налог уже удержан с каждого
// выигрышного раунда, второй раз он не применяется
type Summary struct {
	RoundsPlayed      int
	Wins              int
	Losses            int
	TotalStaked       int
	NetProfit         int
	NetProfitAfterTax int
	UpdatedBalance    int
	Remark            string
}

// Begin создает новую сессию и возвращает ставку первого раунда.
// Баланс нормализуется до десятков. Первый процент одинаковый в обеих
// таблицах, поэтому Case на этом шаге еще не нужен
func Begin(sch Schedules, balance float64) (*Session, int, error) {
	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance < 0 {
		return nil, 0, ErrInvalidBalance
	}

	s := &Session{
		BaseBalance: NearestTen(balance),
		Round:       1,
		Case:        CaseUnset,
		schedules:   sch,
	}

	return s, PercentOf(s.BaseBalance, sch.CaseA[0]), nil
}

// Result обрабатывает результат текущего раунда и возвращает либо переход
// к следующему раунду, либо итог сессии. Ровно одно из двух значений не nil.
//
// Ставка следующего раунда объявляется и добавляется в TotalStaked до того,
// как известен ее результат. Это сознательное решение (оптимистичное
// резервирование ставки): итоги считаются именно в таком порядке
func (s *Session) Result(o Outcome) (*RoundAdvance, *Summary, error) {
	if s == nil || s.Terminal || s.Round < 1 {
		return nil, nil, ErrInvalidTransition
	}
	if o != Win && o != Lose {
		return nil, nil, fmt.Errorf("%w: unknown outcome %q", ErrInvalidTransition, string(o))
	}

	n := s.Round

	// Case фиксируется единственный раз - по итогу первого раунда
	if n == 1 {
		s.Case = caseFor(o)
	}

	percentages := s.schedules.ForCase(s.Case)
	invest := PercentOf(s.BaseBalance, percentages[n-1])
	s.TotalStaked += invest

	if o == Win {
		s.Wins++
		gross := float64(invest)
		tax := gross * s.schedules.TaxRate
		s.NetProfit = NearestTen(float64(s.NetProfit) + gross - tax)
	} else {
		s.Losses++
		s.NetProfit = NearestTen(float64(s.NetProfit - invest))
	}

	s.Sequence = append(s.Sequence, o)

	// Условия завершения: победа после первого раунда
	// либо таблица процентов исчерпана
	ended := (o == Win && n > 1) || n >= len(percentages)
	if ended {
		s.Terminal = true
		return nil, s.summary(), nil
	}

	s.Round = n + 1
	nextStake := PercentOf(s.BaseBalance, percentages[s.Round-1])
	s.TotalStaked += nextStake

	return &RoundAdvance{NextRound: s.Round, NextStake: nextStake}, nil, nil
}

// summary собирает итог завершенной сессии и ремарку,
// сравнивающую сыгранную последовательность с лучшей и худшей возможными
func (s *Session) summary() *Summary {
	afterTax := NearestTen(float64(s.NetProfit))
	return &Summary{
		RoundsPlayed:      len(s.Sequence),
		Wins:              s.Wins,
		Losses:            s.Losses,
		TotalStaked:       s.TotalStaked,
		NetProfit:         s.NetProfit,
		NetProfitAfterTax: afterTax,
		UpdatedBalance:    NearestTen(float64(s.BaseBalance + s.NetProfit)),
		Remark:            Remark(s.schedules, s.BaseBalance, s.Sequence),
	}
}

// Remark сравнивает последовательность с глобально лучшей и худшей
// для данного баланса
func Remark(sch Schedules, balance int, seq []Outcome) string {
	seqStr := SequenceString(seq)

	var bestSeq, worstSeq string
	bestProfit := math.Inf(-1)
	worstProfit := math.Inf(1)
	for _, candidate := range Enumerate(sch) {
		p := float64(Simulate(sch, balance, candidate))
		if p > bestProfit {
			bestProfit = p
			bestSeq = SequenceString(candidate)
		}
		if p < worstProfit {
			worstProfit = p
			worstSeq = SequenceString(candidate)
		}
	}

	switch seqStr {
	case worstSeq:
		return seqStr + " -> Worst possible scenario"
	case bestSeq:
		return seqStr + " -> Best possible scenario"
	default:
		return seqStr + " -> Moderate performance"
	}
}

// SequenceString склеивает последовательность результатов в строку вида "WLW"
func SequenceString(seq []Outcome) string {
	out := make([]byte, 0, len(seq))
	for _, o := range seq {
		out = append(out, o[0])
	}
	return string(out)
}
