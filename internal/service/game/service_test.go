package game

import (
	"context"
	"errors"
	"testing"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/middleware"
	"elephant_backend/internal/model"
	"elephant_backend/internal/repository/game_session_repo"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Фейковые зависимости для тестов сервиса: репозитории в памяти
// и транзакционный менеджер, который просто вызывает функцию

type userRepoFake struct {
	balances map[int]int
}

func (f *userRepoFake) CreateUser(_ context.Context, user *model.User) (int, error) {
	id := len(f.balances) + 1
	f.balances[id] = user.Balance
	return id, nil
}

func (f *userRepoFake) GetUserByLogin(context.Context, string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (f *userRepoFake) GetBalance(_ context.Context, id int) (int, error) {
	return f.balances[id], nil
}

func (f *userRepoFake) UpdateBalance(_ context.Context, id int, amount int) error {
	f.balances[id] = amount
	return nil
}

type summaryRepoFake struct {
	records []model.SummaryRecord
}

func (f *summaryRepoFake) CreateSummary(_ context.Context, rec *model.SummaryRecord) (int, error) {
	rec.ID = len(f.records) + 1
	f.records = append(f.records, *rec)
	return rec.ID, nil
}

func (f *summaryRepoFake) ListRecent(_ context.Context, limit int) ([]model.SummaryRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	out := make([]model.SummaryRecord, 0, limit)
	for i := len(f.records) - 1; i >= len(f.records)-limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

type txManagerFake struct{}

func (txManagerFake) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManagerFake) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type gameCfgFake struct{}

func (gameCfgFake) CaseA() []int       { return []int{10, 10, 15, 30, 50} }
func (gameCfgFake) CaseB() []int       { return []int{10, 25, 65} }
func (gameCfgFake) TaxRate() float64   { return 0.10 }
func (gameCfgFake) EstimateDays() []int { return []int{10, 20, 30, 60, 90} }
func (gameCfgFake) SessionsPerDay() int { return 1 }

func newTestService(t *testing.T) (*serv, *userRepoFake, *summaryRepoFake) {
	t.Helper()

	users := &userRepoFake{balances: map[int]int{1: 500}}
	summaries := &summaryRepoFake{}
	s := NewGameService(
		gameCfgFake{},
		users,
		game_session_repo.NewGameSessionRepository(),
		summaries,
		txManagerFake{},
	).(*serv)

	return s, users, summaries
}

func userCtx(userID int) context.Context {
	return middleware.ContextWithUserID(context.Background(), userID)
}

func TestStart(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx(1)

	res, err := s.Start(ctx, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Round)
	assert.Equal(t, 100, res.Stake)
	assert.Equal(t, 1000, res.BaseBalance)
}

func TestStartInvalidBalance(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.Start(userCtx(1), -100)
	assert.ErrorIs(t, err, engine.ErrInvalidBalance)
}

func TestStartWithoutUser(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.Start(context.Background(), 1000)
	assert.Error(t, err)
}

func TestResultWithoutSession(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.Result(userCtx(1), model.OutcomeWin)
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
}

func TestResultUnknownOutcome(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx(1)

	_, err := s.Start(ctx, 1000)
	require.NoError(t, err)

	_, err = s.Result(ctx, model.RoundOutcome("draw"))
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
}

// Полный цикл Case B: поражение, поражение, победа на последнем раунде.
// Итог записывается, баланс пользователя обновляется
func TestResultFullSession(t *testing.T) {
	s, users, summaries := newTestService(t)
	ctx := userCtx(1)

	_, err := s.Start(ctx, 1000)
	require.NoError(t, err)

	turn, err := s.Result(ctx, model.OutcomeLose)
	require.NoError(t, err)
	require.NotNil(t, turn.Advance)
	assert.Equal(t, 2, turn.Advance.NextRound)
	assert.Equal(t, 250, turn.Advance.NextStake)

	turn, err = s.Result(ctx, model.OutcomeLose)
	require.NoError(t, err)
	require.NotNil(t, turn.Advance)
	assert.Equal(t, 650, turn.Advance.NextStake)

	turn, err = s.Result(ctx, model.OutcomeWin)
	require.NoError(t, err)
	require.NotNil(t, turn.Summary)
	require.Nil(t, turn.Advance)

	sum := turn.Summary
	assert.Equal(t, 3, sum.RoundsPlayed)
	assert.Equal(t, 1, sum.Wins)
	assert.Equal(t, 2, sum.Losses)
	assert.Equal(t, 230, sum.NetProfit) // -100 -250 +585 = 235 -> 230
	assert.Equal(t, 1230, sum.UpdatedBalance)
	assert.Equal(t, "LLW -> Best possible scenario", sum.Remark)

	// Баланс пользователя обновлен, итог сохранен
	assert.Equal(t, 1230, users.balances[1])
	require.Len(t, summaries.records, 1)
	assert.Equal(t, 1, summaries.records[0].UserID)
	assert.Equal(t, 230, summaries.records[0].NetProfit)

	// Сессия удалена: следующий результат без старта - ошибка
	_, err = s.Result(ctx, model.OutcomeWin)
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
}

func TestReset(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx(1)

	_, err := s.Start(ctx, 1000)
	require.NoError(t, err)
	require.NoError(t, s.Reset(ctx))

	_, err = s.Result(ctx, model.OutcomeWin)
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)

	// Повторный сброс - не ошибка
	assert.NoError(t, s.Reset(ctx))
}

func TestState(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx(1)

	_, err := s.State(ctx)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = s.Start(ctx, 1000)
	require.NoError(t, err)

	_, err = s.Result(ctx, model.OutcomeWin)
	require.NoError(t, err)

	state, err := s.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Round)
	assert.Equal(t, "A", state.Case)
	assert.Equal(t, "W", state.Sequence)
	assert.Equal(t, 90, state.NetProfit)
	assert.False(t, state.Terminal)
}

// Сессии разных пользователей не пересекаются
func TestSessionsAreIsolated(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.Start(userCtx(1), 1000)
	require.NoError(t, err)

	_, err = s.Result(userCtx(2), model.OutcomeWin)
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)

	state, err := s.State(userCtx(1))
	require.NoError(t, err)
	assert.Equal(t, 1, state.Round)
}

func TestDeposit(t *testing.T) {
	s, users, _ := newTestService(t)
	ctx := userCtx(1)

	require.NoError(t, s.Deposit(ctx, 1234))
	assert.Equal(t, 1230, users.balances[1])

	assert.ErrorIs(t, s.Deposit(ctx, -10), engine.ErrInvalidBalance)
}

func TestEstimateValidation(t *testing.T) {
	s, _, _ := newTestService(t)
	ctx := userCtx(1)
	balance := 1000.0

	_, err := s.Estimate(ctx, model.EstimateRequest{Balance: &balance, Days: 15})
	assert.ErrorIs(t, err, ErrInvalidEstimateRequest, "15 дней нет в настроенном наборе")

	_, err = s.Estimate(ctx, model.EstimateRequest{Balance: &balance, Days: 10, Strategy: "median"})
	assert.ErrorIs(t, err, ErrInvalidEstimateRequest)
}

func TestEstimateWithExplicitBalance(t *testing.T) {
	s, _, _ := newTestService(t)
	balance := 1000.0

	est, err := s.Estimate(userCtx(1), model.EstimateRequest{
		Balance:  &balance,
		Days:     10,
		Strategy: model.StrategyWeighted,
	})
	require.NoError(t, err)
	require.Len(t, est.History, 10)

	sch := engine.DefaultSchedules()
	assert.Equal(t, 1000, est.History[0].StartBalance)
	assert.Equal(t, engine.WeightedDailyProfit(sch, 1000), est.History[0].SessionProfits[0])
	assert.Equal(t, est.History[9].EndBalance, est.FinalBalance)
}

// Без явного баланса прогноз считается от сохраненного баланса пользователя
func TestEstimateUsesStoredBalance(t *testing.T) {
	s, users, _ := newTestService(t)
	users.balances[1] = 2000

	est, err := s.Estimate(userCtx(1), model.EstimateRequest{Days: 10, Strategy: model.StrategyWorst})
	require.NoError(t, err)
	require.NotEmpty(t, est.History)
	assert.Equal(t, 2000, est.History[0].StartBalance)
	assert.Equal(t, engine.WorstDailyProfit(engine.DefaultSchedules(), 2000), est.History[0].SessionProfits[0])
}

func TestRecentSummariesLimit(t *testing.T) {
	s, _, summaries := newTestService(t)

	for i := 0; i < 5; i++ {
		_, err := summaries.CreateSummary(context.Background(), &model.SummaryRecord{UserID: 1})
		require.NoError(t, err)
	}

	got, err := s.RecentSummaries(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = s.RecentSummaries(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 5, "нулевой лимит заменяется на дефолтный")
}
