package game

import (
	"context"
	"errors"

	"elephant_backend/internal/middleware"
)

// Reset отбрасывает активную сессию пользователя.
// Сброс без активной сессии не считается ошибкой
func (s *serv) Reset(ctx context.Context) error {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return errors.New("user id not found in context")
	}

	s.sessionRepo.Delete(userID)
	return nil
}
