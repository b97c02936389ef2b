package game

import (
	"context"
	"errors"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/middleware"
	"elephant_backend/internal/model"
)

// Start начинает новую игровую сессию с указанным балансом.
// Уже идущая сессия при этом отбрасывается - как и сброс по /start
func (s *serv) Start(ctx context.Context, balance float64) (*model.StartResult, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	session, stake, err := engine.Begin(s.schedules(), balance)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Save(userID, session)

	return &model.StartResult{
		Round:       session.Round,
		Stake:       stake,
		BaseBalance: session.BaseBalance,
	}, nil
}
