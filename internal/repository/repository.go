package repository

import (
	"context"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

// GameSessionRepository - активные игровые сессии. Живут только в памяти:
// долговечность состояния между рестартами сервиса не требуется
type GameSessionRepository interface {
	Get(userID int) (*engine.Session, bool)
	Save(userID int, session *engine.Session)
	Delete(userID int)
}

// SummaryRepository - итоги завершенных сессий
type SummaryRepository interface {
	CreateSummary(ctx context.Context, rec *model.SummaryRecord) (id int, err error)
	ListRecent(ctx context.Context, limit int) ([]model.SummaryRecord, error)
}
