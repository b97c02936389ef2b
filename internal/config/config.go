package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GameConfig - таблицы процентов, налог и политика прогнозов
type GameConfig interface {
	CaseA() []int
	CaseB() []int
	TaxRate() float64
	EstimateDays() []int
	SessionsPerDay() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// CreatorConfig - ID создателя для админских эндпоинтов
type CreatorConfig interface {
	CreatorID() int
}
