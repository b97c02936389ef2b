package game_session_repo

import (
	"sync"

	"elephant_backend/internal/engine"
	"elephant_backend/internal/repository"
)

// Хранилище активных игровых сессий в памяти.
// Одна сессия на пользователя; сессии разных пользователей независимы.
// Мьютекс защищает только карту: сама сессия обрабатывается строго
// последовательно в рамках одного пользователя
type repo struct {
	mtx      sync.RWMutex
	sessions map[int]*engine.Session
}

func NewGameSessionRepository() repository.GameSessionRepository {
	return &repo{
		sessions: make(map[int]*engine.Session),
	}
}

// Get - активная сессия пользователя, если есть
func (r *repo) Get(userID int) (*engine.Session, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[userID]
	return s, ok
}

// Save - сохраняет (или заменяет) активную сессию пользователя
func (r *repo) Save(userID int, session *engine.Session) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sessions[userID] = session
}

// Delete - удаляет сессию пользователя (завершение или сброс)
func (r *repo) Delete(userID int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, userID)
}
