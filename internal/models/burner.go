package models

import (
	"gorm.io/gorm"
)

// Burner represents one platform virtual number connected to this service.
// BurnerID is the platform-assigned identifier and acts as the natural key;
// records are only ever created or updated during the OAuth callback.
type Burner struct {
	// gorm.Model gives us ID (uint), CreatedAt, UpdatedAt, DeletedAt
	gorm.Model

	BurnerID    string `json:"burner_id" gorm:"uniqueIndex;not null"`
	BurnerName  string `json:"burner_name"`
	AccessToken string `json:"-" gorm:"index;not null"` // shared across burners under one grant
	Active      bool   `json:"active" gorm:"default:true"`
}

// BurnerUpsert carries the fields written on every OAuth re-authorization.
type BurnerUpsert struct {
	BurnerID    string
	BurnerName  string
	AccessToken string
}
