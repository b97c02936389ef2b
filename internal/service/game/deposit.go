package game

import (
	"context"
	"errors"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/middleware"
)

// Deposit устанавливает сохраненный баланс пользователя.
// Сумма нормализуется до десятков, как и все деньги в системе
func (s *serv) Deposit(ctx context.Context, amount int) error {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return errors.New("user id not found in context")
	}

	if amount < 0 {
		return engine.ErrInvalidBalance
	}

	return s.userRepo.UpdateBalance(ctx, userID, engine.NearestTen(float64(amount)))
}
