package game

import (
	"elephant_backend/internal/config"
	"elephant_backend/internal/engine"
	"elephant_backend/internal/repository"
	"elephant_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg         config.GameConfig
	userRepo    repository.UserRepository
	sessionRepo repository.GameSessionRepository
	summaryRepo repository.SummaryRepository
	txManager   trm.Manager
}

// NewGameService - сервис игровых сессий и прогнозов
func NewGameService(
	cfg config.GameConfig,
	userRepo repository.UserRepository,
	sessionRepo repository.GameSessionRepository,
	summaryRepo repository.SummaryRepository,
	txManager trm.Manager,
) service.GameService {
	return &serv{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		summaryRepo: summaryRepo,
		txManager:   txManager,
	}
}

// schedules собирает неизменяемые таблицы движка из конфигурации
func (s *serv) schedules() engine.Schedules {
	return engine.Schedules{
		CaseA:   s.cfg.CaseA(),
		CaseB:   s.cfg.CaseB(),
		TaxRate: s.cfg.TaxRate(),
	}
}
