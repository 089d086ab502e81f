package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/burnerlabs/gifbot-backend/internal/models"
)

// MemoryStore holds burner records in memory, for tests and local runs
// without PostgreSQL. The mutex makes each upsert atomic, matching the
// uniqueness guarantee the database store gets from its unique index.
type MemoryStore struct {
	mu      sync.RWMutex
	burners map[string]*models.Burner // keyed by BurnerID
	counter uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		burners: make(map[string]*models.Burner),
	}
}

func (m *MemoryStore) UpsertBurner(upsert *models.BurnerUpsert) (*models.Burner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.burners[upsert.BurnerID]; ok {
		existing.BurnerName = upsert.BurnerName
		existing.AccessToken = upsert.AccessToken
		existing.UpdatedAt = time.Now()
		return existing, nil
	}

	m.counter++
	burner := &models.Burner{
		Model:       gorm.Model{ID: m.counter, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		BurnerID:    upsert.BurnerID,
		BurnerName:  upsert.BurnerName,
		AccessToken: upsert.AccessToken,
		Active:      true,
	}
	m.burners[burner.BurnerID] = burner
	return burner, nil
}

func (m *MemoryStore) GetBurnerByBurnerID(burnerID string) (*models.Burner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	burner, ok := m.burners[burnerID]
	if !ok {
		return nil, ErrBurnerNotFound
	}
	return burner, nil
}

func (m *MemoryStore) GetBurnersByAccessToken(accessToken string) ([]*models.Burner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var burners []*models.Burner
	for _, b := range m.burners {
		if b.AccessToken == accessToken {
			burners = append(burners, b)
		}
	}
	return burners, nil
}
