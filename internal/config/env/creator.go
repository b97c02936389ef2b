package env

import (
	"fmt"
	"os"
	"strconv"

	"elephant_backend/internal/config"
)

const (
	creatorIDEnvName = "CREATOR_ID"
)

type creatorConfig struct {
	creatorID int
}

func NewCreatorConfig() (config.CreatorConfig, error) {
	raw := os.Getenv(creatorIDEnvName)
	if len(raw) == 0 {
		return nil, fmt.Errorf("creator id not found")
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid creator id: %w", err)
	}

	return &creatorConfig{
		creatorID: id,
	}, nil
}

func (c *creatorConfig) CreatorID() int {
	return c.creatorID
}
