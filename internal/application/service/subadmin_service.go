package service

import (
	"context"
	"strings"

	"github.com/mkamande/shopsphere-admin/internal/domain/access"
	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/internal/infrastructure/cache"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
)

// SubAdminService manages sub-admin accounts. Department and permission
// assignments are validated against the closed section matrix before they
// reach the commerce API, so an account can never hold a capability the panel
// does not know.
type SubAdminService struct {
	commerce gateway.CommerceGateway
	cache    *cache.Store
}

// NewSubAdminService creates a new sub-admin service
func NewSubAdminService(commerce gateway.CommerceGateway, cacheStore *cache.Store) *SubAdminService {
	return &SubAdminService{commerce: commerce, cache: cacheStore}
}

// List returns all sub-admin accounts, empty on upstream failure.
func (s *SubAdminService) List(ctx context.Context) []entity.SubAdmin {
	key := cache.Key("sub-admins")
	if cached, ok := s.cache.Get(key); ok {
		if subAdmins, ok := cached.([]entity.SubAdmin); ok {
			return subAdmins
		}
	}

	gen := s.cache.Begin(key)
	subAdmins, err := s.commerce.ListSubAdmins(ctx)
	if err != nil {
		return []entity.SubAdmin{}
	}
	s.cache.Complete(key, gen, subAdmins, "sub-admins")
	return subAdmins
}

// Create validates and creates a sub-admin account.
func (s *SubAdminService) Create(ctx context.Context, input gateway.SubAdminInput) (*entity.SubAdmin, error) {
	if err := validateSubAdminInput(input, true); err != nil {
		return nil, err
	}
	subAdmin, err := s.commerce.CreateSubAdmin(ctx, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("sub-admins")
	return subAdmin, nil
}

// Update validates and updates a sub-admin account.
func (s *SubAdminService) Update(ctx context.Context, id string, input gateway.SubAdminInput) (*entity.SubAdmin, error) {
	if err := validateSubAdminInput(input, false); err != nil {
		return nil, err
	}
	subAdmin, err := s.commerce.UpdateSubAdmin(ctx, id, input)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate("sub-admins")
	return subAdmin, nil
}

// Delete removes a sub-admin account.
func (s *SubAdminService) Delete(ctx context.Context, id string) error {
	if err := s.commerce.DeleteSubAdmin(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate("sub-admins")
	return nil
}

func validateSubAdminInput(input gateway.SubAdminInput, requirePassword bool) error {
	var fieldErrors []apperror.FieldError

	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "name is required"})
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "a valid email is required"})
	}
	if requirePassword && len(input.Password) < 8 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if !input.Department.IsAssignable() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "department", Message: "unknown department: " + string(input.Department)})
	}
	for _, permission := range input.Permissions {
		if !access.ValidCapability(permission) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "permissions", Message: "unknown permission: " + permission})
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
