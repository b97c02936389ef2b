package service

import (
	"context"

	"elephant_backend/internal/model"
)

type GameService interface {
	Start(ctx context.Context, balance float64) (*model.StartResult, error)
	Result(ctx context.Context, outcome model.RoundOutcome) (*model.TurnResult, error)
	Reset(ctx context.Context) error
	State(ctx context.Context) (*model.GameState, error)
	Deposit(ctx context.Context, amount int) error
	Estimate(ctx context.Context, req model.EstimateRequest) (*model.Estimate, error)
	RecentSummaries(ctx context.Context, limit int) ([]model.SummaryRecord, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
