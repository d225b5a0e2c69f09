package service

import (
	"context"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/repository"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// PreferenceService persists the single UI key that survives reloads: the
// admin's active navigation tab.
type PreferenceService struct {
	preferences repository.PreferenceRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(preferences repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{preferences: preferences}
}

// GetActiveTab returns the stored active tab id, "" when none was stored.
func (s *PreferenceService) GetActiveTab(ctx context.Context, adminID string) (string, error) {
	return s.preferences.Get(ctx, adminID, entity.PreferenceKeyActiveTab)
}

// SetActiveTab stores the active tab id for an admin.
func (s *PreferenceService) SetActiveTab(ctx context.Context, adminID, tabID string) error {
	if tabID == "" {
		return apperror.NewBadRequestError("tab id is required")
	}
	return s.preferences.Set(ctx, adminID, entity.PreferenceKeyActiveTab, tabID)
}
