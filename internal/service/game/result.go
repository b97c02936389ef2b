package game

import (
	"context"
	"errors"
	"fmt"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/middleware"
	"elephant_backend/internal/model"
)

// Result обрабатывает результат текущего раунда. При завершении сессии
// обновляет сохраненный баланс пользователя и записывает итог -
// в одной транзакции
func (s *serv) Result(ctx context.Context, outcome model.RoundOutcome) (*model.TurnResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	var o engine.Outcome
	switch outcome {
	case model.OutcomeWin:
		o = engine.Win
	case model.OutcomeLose:
		o = engine.Lose
	default:
		return nil, fmt.Errorf("%w: unknown outcome %q", engine.ErrInvalidTransition, string(outcome))
	}

	session, ok := s.sessionRepo.Get(userID)
	if !ok {
		return nil, engine.ErrInvalidTransition
	}

	adv, sum, err := session.Result(o)
	if err != nil {
		return nil, err
	}

	if adv != nil {
		s.sessionRepo.Save(userID, session)
		return &model.TurnResult{
			Advance: &model.RoundAdvance{
				NextRound: adv.NextRound,
				NextStake: adv.NextStake,
			},
		}, nil
	}

	// Сессия завершена: фиксируем баланс и итог атомарно
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.UpdateBalance(txCtx, userID, sum.UpdatedBalance); err != nil {
			return fmt.Errorf("failed to update user balance: %w", err)
		}

		_, err := s.summaryRepo.CreateSummary(txCtx, &model.SummaryRecord{
			UserID:         userID,
			BaseBalance:    session.BaseBalance,
			RoundsPlayed:   sum.RoundsPlayed,
			Wins:           sum.Wins,
			Losses:         sum.Losses,
			TotalStaked:    sum.TotalStaked,
			NetProfit:      sum.NetProfit,
			UpdatedBalance: sum.UpdatedBalance,
			Remark:         sum.Remark,
		})
		if err != nil {
			return fmt.Errorf("failed to store session summary: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Delete(userID)

	return &model.TurnResult{
		Summary: &model.SessionSummary{
			RoundsPlayed:      sum.RoundsPlayed,
			Wins:              sum.Wins,
			Losses:            sum.Losses,
			TotalStaked:       sum.TotalStaked,
			NetProfit:         sum.NetProfit,
			NetProfitAfterTax: sum.NetProfitAfterTax,
			UpdatedBalance:    sum.UpdatedBalance,
			Remark:            sum.Remark,
		},
	}, nil
}
