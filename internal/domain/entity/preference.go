package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preference is a single persisted UI preference for an admin identity.
// The only key the panel currently stores is the last active navigation tab;
// everything else the UI shows is refetched per view.
type Preference struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	AdminID   string    `gorm:"size:64;not null;uniqueIndex:idx_admin_pref_key" json:"admin_id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex:idx_admin_pref_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PreferenceKeyActiveTab is the one key that survives page reloads.
const PreferenceKeyActiveTab = "adminActiveTab"

// BeforeCreate generates a UUID before creating a new preference
func (p *Preference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Preference model
func (Preference) TableName() string {
	return "preferences"
}
