package repository

import (
	"context"
	"errors"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	domainRepo "github.com/mkamande/shopsphere-admin/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) domainRepo.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// Get returns the stored value for (adminID, key), or "" when none exists.
func (r *preferenceRepository) Get(ctx context.Context, adminID, key string) (string, error) {
	var pref entity.Preference
	err := r.db.WithContext(ctx).
		Where("admin_id = ? AND key = ?", adminID, key).
		First(&pref).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

// Set upserts the value for (adminID, key).
func (r *preferenceRepository) Set(ctx context.Context, adminID, key, value string) error {
	pref := entity.Preference{
		AdminID: adminID,
		Key:     key,
		Value:   value,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "admin_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}
