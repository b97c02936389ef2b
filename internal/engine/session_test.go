package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginValidation(t *testing.T) {
	sch := DefaultSchedules()

	tests := []struct {
		name    string
		balance float64
	}{
		{"отрицательный баланс", -1},
		{"NaN", math.NaN()},
		{"плюс бесконечность", math.Inf(1)},
		{"минус бесконечность", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, stake, err := Begin(sch, tt.balance)
			assert.ErrorIs(t, err, ErrInvalidBalance)
			assert.Nil(t, s)
			assert.Zero(t, stake)
		})
	}
}

func TestBeginNormalizesBalance(t *testing.T) {
	s, stake, err := Begin(DefaultSchedules(), 1005)
	require.NoError(t, err)

	assert.Equal(t, 1000, s.BaseBalance)
	assert.Equal(t, 100, stake)
	assert.Equal(t, 1, s.Round)
	assert.Equal(t, CaseUnset, s.Case)
	assert.Zero(t, s.TotalStaked)
}

// Победа в первом раунде выбирает Case A и не завершает сессию
func TestCaseAFlow(t *testing.T) {
	sch := DefaultSchedules()
	s, stake, err := Begin(sch, 1000)
	require.NoError(t, err)
	assert.Equal(t, 100, stake)

	adv, sum, err := s.Result(Win)
	require.NoError(t, err)
	require.Nil(t, sum, "победа в первом раунде не должна завершать сессию")
	require.NotNil(t, adv)

	assert.Equal(t, CaseA, s.Case)
	assert.Equal(t, 2, adv.NextRound)
	assert.Equal(t, 100, adv.NextStake) // 10% от 1000
	// Ставка раунда 1 плюс зарезервированная ставка раунда 2
	assert.Equal(t, 200, s.TotalStaked)
	assert.Equal(t, 90, s.NetProfit)

	adv, sum, err = s.Result(Lose)
	require.NoError(t, err)
	require.Nil(t, sum)
	assert.Equal(t, 3, adv.NextRound)
	assert.Equal(t, 150, adv.NextStake) // 15% от 1000
	assert.Equal(t, -10, s.NetProfit)   // 90 - 100

	// Победа после первого раунда завершает сессию
	adv, sum, err = s.Result(Win)
	require.NoError(t, err)
	require.Nil(t, adv)
	require.NotNil(t, sum)

	assert.Equal(t, 3, sum.RoundsPlayed)
	assert.Equal(t, 2, sum.Wins)
	assert.Equal(t, 1, sum.Losses)
	assert.Equal(t, 120, sum.NetProfit) // -10 + 135 = 125 -> 120
	assert.Equal(t, sum.NetProfit, sum.NetProfitAfterTax)
	assert.Equal(t, 1120, sum.UpdatedBalance)
	// 100 + 100 (резерв р2) + 100 (результат р2) + 150 (резерв р3) + 150 (результат р3)
	assert.Equal(t, 600, sum.TotalStaked)
	assert.True(t, s.Terminal)
}

// Поражение в первом раунде выбирает Case B; третий раунд завершает сессию
// при любом исходе
func TestCaseBFlow(t *testing.T) {
	sch := DefaultSchedules()
	s, _, err := Begin(sch, 1000)
	require.NoError(t, err)

	adv, sum, err := s.Result(Lose)
	require.NoError(t, err)
	require.Nil(t, sum)
	assert.Equal(t, CaseB, s.Case)
	assert.Equal(t, 250, adv.NextStake) // 25% от 1000

	adv, sum, err = s.Result(Lose)
	require.NoError(t, err)
	require.Nil(t, sum)
	assert.Equal(t, 3, adv.NextRound)
	assert.Equal(t, 650, adv.NextStake) // 65% от 1000, последний раунд Case B

	// Таблица исчерпана: сессия завершается даже при поражении
	adv, sum, err = s.Result(Lose)
	require.NoError(t, err)
	require.Nil(t, adv)
	require.NotNil(t, sum)

	assert.Equal(t, 3, sum.RoundsPlayed)
	assert.Equal(t, -1000, sum.NetProfit)
	assert.Equal(t, 0, sum.UpdatedBalance)
	assert.Equal(t, "LLL -> Worst possible scenario", sum.Remark)
}

// Case фиксируется по первому раунду и не пересчитывается
func TestCaseSetOnce(t *testing.T) {
	s, _, err := Begin(DefaultSchedules(), 1000)
	require.NoError(t, err)

	_, _, err = s.Result(Lose)
	require.NoError(t, err)
	require.Equal(t, CaseB, s.Case)

	_, _, err = s.Result(Win)
	require.NoError(t, err)
	assert.Equal(t, CaseB, s.Case)
	assert.True(t, s.Terminal)
}

func TestResultAfterTerminal(t *testing.T) {
	s, _, err := Begin(DefaultSchedules(), 1000)
	require.NoError(t, err)

	_, _, err = s.Result(Lose)
	require.NoError(t, err)
	_, sum, err := s.Result(Win)
	require.NoError(t, err)
	require.NotNil(t, sum)

	_, _, err = s.Result(Win)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestResultUnknownOutcome(t *testing.T) {
	s, _, err := Begin(DefaultSchedules(), 1000)
	require.NoError(t, err)

	_, _, err = s.Result(Outcome("X"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	// Состояние не изменилось, сессия продолжается
	assert.Equal(t, 1, s.Round)
	assert.Empty(t, s.Sequence)

	_, _, err = s.Result(Win)
	assert.NoError(t, err)
}

func TestRemark(t *testing.T) {
	sch := DefaultSchedules()

	// Лучший исход для 1000 - LLW (+230), худший - LLL (-1000)
	assert.Equal(t, "LLW -> Best possible scenario", Remark(sch, 1000, parseSequence(t, "LLW")))
	assert.Equal(t, "LLL -> Worst possible scenario", Remark(sch, 1000, parseSequence(t, "LLL")))
	assert.Equal(t, "WW -> Moderate performance", Remark(sch, 1000, parseSequence(t, "WW")))
}
