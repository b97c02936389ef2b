package model

import "time"

// RoundOutcome - результат раунда на уровне API
type RoundOutcome string

const (
	OutcomeWin  RoundOutcome = "win"
	OutcomeLose RoundOutcome = "lose"
)

// StartResult - ответ на старт сессии: номер раунда и ставка первого раунда
type StartResult struct {
	Round       int
	Stake       int
	BaseBalance int
}

// TurnResult - итог обработки результата раунда.
// Заполнено ровно одно из двух полей
type TurnResult struct {
	Advance *RoundAdvance
	Summary *SessionSummary
}

type RoundAdvance struct {
	NextRound int
	NextStake int
}

type SessionSummary struct {
	RoundsPlayed      int
	Wins              int
	Losses            int
	TotalStaked       int
	NetProfit         int
	NetProfitAfterTax int
	UpdatedBalance    int
	Remark            string
}

// GameState - снимок активной сессии для клиента
type GameState struct {
	BaseBalance int
	Round       int
	Case        string
	TotalStaked int
	NetProfit   int
	Wins        int
	Losses      int
	Sequence    string
	Terminal    bool
}

// EstimateRequest - запрос прогноза компаундинга.
// Balance nil означает "взять сохраненный баланс пользователя"
type EstimateRequest struct {
	Balance        *float64
	Days           int
	SessionsPerDay int
	Strategy       EstimateStrategy
}

// EstimateStrategy - политика выбора дневной прибыли
type EstimateStrategy string

const (
	// StrategyWorst - чистый худший исход
	StrategyWorst EstimateStrategy = "worst"
	// StrategyWeighted - 80% худшего исхода + 20% среднего по остальным
	StrategyWeighted EstimateStrategy = "weighted"
)

type Estimate struct {
	FinalBalance int
	History      []EstimateDay
}

type EstimateDay struct {
	Day            int
	StartBalance   int
	SessionProfits []int
	EndBalance     int
}

// SummaryRecord - сохраненный итог завершенной сессии
type SummaryRecord struct {
	ID             int
	UserID         int
	BaseBalance    int
	RoundsPlayed   int
	Wins           int
	Losses         int
	TotalStaked    int
	NetProfit      int
	UpdatedBalance int
	Remark         string
	CreatedAt      time.Time
}
