package game

import (
	"context"
	"errors"
	"fmt"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/middleware"
	"elephant_backend/internal/model"
)

// ErrInvalidEstimateRequest - горизонт или стратегия вне допустимого набора
var ErrInvalidEstimateRequest = errors.New("invalid estimate request")

// Estimate строит прогноз компаундинга. Баланс берется из запроса,
// а при его отсутствии - из сохраненного баланса пользователя.
// Горизонт ограничен настроенным набором дней
func (s *serv) Estimate(ctx context.Context, req model.EstimateRequest) (*model.Estimate, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	if !s.allowedDays(req.Days) {
		return nil, fmt.Errorf("%w: days must be one of %v", ErrInvalidEstimateRequest, s.cfg.EstimateDays())
	}

	var balance float64
	if req.Balance != nil {
		balance = *req.Balance
	} else {
		stored, err := s.userRepo.GetBalance(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user balance: %w", err)
		}
		balance = float64(stored)
	}

	sessionsPerDay := req.SessionsPerDay
	if sessionsPerDay < 1 {
		sessionsPerDay = s.cfg.SessionsPerDay()
	}

	var useWorst bool
	switch req.Strategy {
	case model.StrategyWorst:
		useWorst = true
	case model.StrategyWeighted, "":
		useWorst = false
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidEstimateRequest, string(req.Strategy))
	}

	final, history, err := engine.Compound(s.schedules(), balance, req.Days, sessionsPerDay, useWorst)
	if err != nil {
		return nil, err
	}

	days := make([]model.EstimateDay, 0, len(history))
	for _, rec := range history {
		days = append(days, model.EstimateDay{
			Day:            rec.Day,
			StartBalance:   rec.StartBalance,
			SessionProfits: rec.SessionProfits,
			EndBalance:     rec.EndBalance,
		})
	}

	return &model.Estimate{
		FinalBalance: final,
		History:      days,
	}, nil
}

func (s *serv) allowedDays(days int) bool {
	for _, d := range s.cfg.EstimateDays() {
		if d == days {
			return true
		}
	}
	return false
}
