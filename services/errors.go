package services

import (
	"errors"

	"github.com/chunponglai/tricks-planner/models"
)

// Sentinel errors controllers translate into HTTP statuses. ErrNotFound
// deliberately covers both "no such row" and "row owned by someone
// else" so responses never reveal another user's data exists.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func normalizeDifficulty(difficulty string) string {
	if difficulty == "" {
		return models.DifficultyNone
	}
	return difficulty
}
