package storage

import (
	"errors"

	"github.com/burnerlabs/gifbot-backend/internal/models"
)

// ErrBurnerNotFound is returned when no record exists for a burner id.
var ErrBurnerNotFound = errors.New("burner not found")

// Store defines the persistence operations for burner records.
type Store interface {
	// UpsertBurner creates the record for the given burner id or, if one
	// exists, overwrites its name and access token. Nothing is ever deleted.
	UpsertBurner(upsert *models.BurnerUpsert) (*models.Burner, error)

	// GetBurnerByBurnerID resolves a record by the platform burner id.
	// Returns ErrBurnerNotFound when absent.
	GetBurnerByBurnerID(burnerID string) (*models.Burner, error)

	// GetBurnersByAccessToken lists all records associated with one grant.
	GetBurnersByAccessToken(accessToken string) ([]*models.Burner, error)
}
