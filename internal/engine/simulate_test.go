package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Прибыль по каждой последовательности для баланса 1000, посчитанная вручную.
// Ставки Case A: 100,100,150,300,500; Case B: 100,250,650.
// Выигрыш приносит ставку минус 10% налога, округление после каждого шага
func TestSimulateGoldenValues(t *testing.T) {
	sch := DefaultSchedules()

	tests := []struct {
		seq  string
		want int
	}{
		{"WW", 180},      // +90 +90
		{"WLW", 120},     // +90 -100 +135 = 125 -> 120
		{"WLLW", 110},    // +90 -100 -150 +270
		{"WLLLW", -10},   // +90 -100 -150 -300 +450
		{"WLLLL", -960},  // +90 -100 -150 -300 -500
		{"LW", 120},      // -100 +225 = 125 -> 120
		{"LLW", 230},     // -100 -250 +585 = 235 -> 230
		{"LLL", -1000},   // -100 -250 -650
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			assert.Equal(t, tt.want, Simulate(sch, 1000, parseSequence(t, tt.seq)))
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	sch := DefaultSchedules()
	seq := parseSequence(t, "WLLW")

	first := Simulate(sch, 1730, seq)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Simulate(sch, 1730, seq))
	}
}

func TestSimulateEmptySequence(t *testing.T) {
	assert.Zero(t, Simulate(DefaultSchedules(), 1000, nil))
}

// Лишний хвост после терминального состояния игнорируется
func TestSimulateIgnoresTrailingOutcomes(t *testing.T) {
	sch := DefaultSchedules()

	terminal := Simulate(sch, 1000, parseSequence(t, "LW"))
	padded := Simulate(sch, 1000, parseSequence(t, "LWLLLLL"))
	assert.Equal(t, terminal, padded)

	// Исчерпание таблицы Case B на третьем раунде
	exhausted := Simulate(sch, 1000, parseSequence(t, "LLL"))
	overLong := Simulate(sch, 1000, parseSequence(t, "LLLWWWW"))
	assert.Equal(t, exhausted, overLong)
}

// Симулятор и живая сессия начисляют прибыль одинаково
func TestSimulateMatchesLiveSession(t *testing.T) {
	sch := DefaultSchedules()

	for _, balance := range []int{1000, 2100, 930, 50} {
		for _, seq := range Enumerate(sch) {
			s, _, err := Begin(sch, float64(balance))
			require.NoError(t, err)

			var summary *Summary
			for _, o := range seq {
				_, summary, err = s.Result(o)
				require.NoError(t, err)
			}

			require.NotNil(t, summary, "последовательность %s не завершила сессию", SequenceString(seq))
			assert.Equal(t, Simulate(sch, balance, seq), summary.NetProfit,
				"balance=%d seq=%s", balance, SequenceString(seq))
		}
	}
}

func parseSequence(t *testing.T, s string) []Outcome {
	t.Helper()
	seq := make([]Outcome, 0, len(s))
	for _, c := range s {
		switch c {
		case 'W':
			seq = append(seq, Win)
		case 'L':
			seq = append(seq, Lose)
		default:
			t.Fatalf("неизвестный результат %q", c)
		}
	}
	return seq
}
