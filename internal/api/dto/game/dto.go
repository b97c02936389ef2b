package game

type StartRequest struct {
	Balance float64 `json:"balance"` // Стартовый баланс сессии
}

type StartResponse struct {
	Round       int `json:"round"`        // Всегда 1
	Stake       int `json:"stake"`        // Ставка первого раунда
	BaseBalance int `json:"base_balance"` // Нормализованный базовый баланс
}

type ResultRequest struct {
	Outcome string `json:"outcome"` // "win" или "lose"
}

// TurnResponse - заполнено ровно одно из полей
type TurnResponse struct {
	Advance *RoundAdvance   `json:"advance,omitempty"`
	Summary *SessionSummary `json:"summary,omitempty"`
}

type RoundAdvance struct {
	NextRound int `json:"next_round"`
	NextStake int `json:"next_stake"` // Уже зарезервирована в total_staked
}

type SessionSummary struct {
	RoundsPlayed      int    `json:"rounds_played"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	TotalStaked       int    `json:"total_staked"`
	NetProfit         int    `json:"net_profit"`
	NetProfitAfterTax int    `json:"net_profit_after_tax"` // Алиас: налог уже удержан поэтапно
	UpdatedBalance    int    `json:"updated_balance"`
	Remark            string `json:"remark"` // Сравнение с лучшим/худшим исходом
}

type StateResponse struct {
	BaseBalance int    `json:"base_balance"`
	Round       int    `json:"round"`
	Case        string `json:"case"` // "", "A" или "B"
	TotalStaked int    `json:"total_staked"`
	NetProfit   int    `json:"net_profit"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Sequence    string `json:"sequence"` // Например "WL"
	Terminal    bool   `json:"terminal"`
}

type DepositRequest struct {
	Amount int `json:"amount"` // Новый сохраненный баланс
}

type EstimateRequest struct {
	Balance        *float64 `json:"balance,omitempty"` // nil - взять сохраненный баланс
	Days           int      `json:"days"`              // Один из настроенных горизонтов
	SessionsPerDay int      `json:"sessions_per_day,omitempty"`
	Strategy       string   `json:"strategy,omitempty"` // "worst" или "weighted"
}

type EstimateResponse struct {
	FinalBalance int           `json:"final_balance"`
	History      []EstimateDay `json:"history"`
}

type EstimateDay struct {
	Day            int   `json:"day"`
	StartBalance   int   `json:"start_balance"`
	SessionProfits []int `json:"session_profits"`
	EndBalance     int   `json:"end_balance"`
}

type SummaryRecord struct {
	ID             int    `json:"id"`
	UserID         int    `json:"user_id"`
	BaseBalance    int    `json:"base_balance"`
	RoundsPlayed   int    `json:"rounds_played"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	TotalStaked    int    `json:"total_staked"`
	NetProfit      int    `json:"net_profit"`
	UpdatedBalance int    `json:"updated_balance"`
	Remark         string `json:"remark"`
	CreatedAt      string `json:"created_at"`
}
