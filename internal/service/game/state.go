package game

import (
	"context"
	"errors"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/middleware"
	"elephant_backend/internal/model"
)

var ErrNoActiveSession = errors.New("no active session")

// State - снимок активной сессии пользователя
func (s *serv) State(ctx context.Context) (*model.GameState, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	session, ok := s.sessionRepo.Get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}

	return &model.GameState{
		BaseBalance: session.BaseBalance,
		Round:       session.Round,
		Case:        caseLabel(session.Case),
		TotalStaked: session.TotalStaked,
		NetProfit:   session.NetProfit,
		Wins:        session.Wins,
		Losses:      session.Losses,
		Sequence:    engine.SequenceString(session.Sequence),
		Terminal:    session.Terminal,
	}, nil
}

func caseLabel(c engine.Case) string {
	switch c {
	case engine.CaseA:
		return "A"
	case engine.CaseB:
		return "B"
	default:
		return ""
	}
}
