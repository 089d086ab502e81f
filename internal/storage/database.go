package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/burnerlabs/gifbot-backend/internal/models"
)

// DatabaseStore implements Store on PostgreSQL via GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given database handle
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// UpsertBurner writes through an INSERT ... ON CONFLICT so concurrent
// re-authorizations of the same burner can never race into duplicates.
func (s *DatabaseStore) UpsertBurner(upsert *models.BurnerUpsert) (*models.Burner, error) {
	burner := &models.Burner{
		BurnerID:    upsert.BurnerID,
		BurnerName:  upsert.BurnerName,
		AccessToken: upsert.AccessToken,
		Active:      true,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "burner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"burner_name", "access_token", "updated_at"}),
	}).Create(burner).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert burner %s: %w", upsert.BurnerID, err)
	}

	return burner, nil
}

// Ping checks the underlying database connection.
func (s *DatabaseStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *DatabaseStore) GetBurnerByBurnerID(burnerID string) (*models.Burner, error) {
	var burner models.Burner
	err := s.db.Where("burner_id = ?", burnerID).First(&burner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBurnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up burner %s: %w", burnerID, err)
	}
	return &burner, nil
}

func (s *DatabaseStore) GetBurnersByAccessToken(accessToken string) ([]*models.Burner, error) {
	var burners []*models.Burner
	if err := s.db.Where("access_token = ?", accessToken).Find(&burners).Error; err != nil {
		return nil, fmt.Errorf("failed to list burners for token: %w", err)
	}
	return burners, nil
}
