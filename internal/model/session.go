package model

import "time"

// Session - авторизационная сессия (refresh токен хранится хэшем)
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}
