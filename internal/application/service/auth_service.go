package service

import (
	"context"
	"errors"

	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/internal/domain/enum"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

// BootstrapAdminID identifies the locally configured fallback admin. It is
// used before any sub-admin exists upstream and never collides with commerce
// API identifiers.
const BootstrapAdminID = "bootstrap-admin"

// AuthService handles authentication-related operations. Credentials are
// verified against the commerce API; a locally configured bootstrap admin
// (bcrypt hash in config) works even when upstream is unreachable.
type AuthService struct {
	commerce   gateway.CommerceGateway
	bootstrap  config.BootstrapConfig
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	commerce gateway.CommerceGateway,
	bootstrap config.BootstrapConfig,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		commerce:   commerce,
		bootstrap:  bootstrap,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Account      *gateway.AdminAccount
	AccessToken  string
	RefreshToken string
}

// Login authenticates an admin and returns tokens. The authorization profile
// (admin flag, department, permissions) is embedded in the access token so
// per-request checks stay local.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	account, err := s.authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(
		account.ID, account.Email, account.IsAdmin,
		string(account.Department), account.Permissions)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The
// authorization profile is re-resolved so revoked sub-admins lose access at
// refresh time.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	adminID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	account, err := s.resolveAccount(ctx, adminID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(
		account.ID, account.Email, account.IsAdmin,
		string(account.Department), account.Permissions)
	if err != nil {
		return nil, err
	}

	newRefresh, err := s.jwtManager.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Account:      account,
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*gateway.AdminAccount, error) {
	if s.bootstrap.AdminEmail != "" && email == s.bootstrap.AdminEmail {
		if !utils.CheckPasswordHash(password, s.bootstrap.AdminPasswordHash) {
			return nil, apperror.ErrInvalidCredentials
		}
		return s.bootstrapAccount(), nil
	}

	account, err := s.commerce.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) || errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}
	return account, nil
}

func (s *AuthService) resolveAccount(ctx context.Context, adminID string) (*gateway.AdminAccount, error) {
	if adminID == BootstrapAdminID {
		return s.bootstrapAccount(), nil
	}

	subAdmins, err := s.commerce.ListSubAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for _, subAdmin := range subAdmins {
		if subAdmin.ID == adminID {
			if !subAdmin.Active {
				return nil, apperror.ErrForbidden
			}
			return &gateway.AdminAccount{
				ID:          subAdmin.ID,
				Name:        subAdmin.Name,
				Email:       subAdmin.Email,
				IsAdmin:     false,
				Department:  subAdmin.Department,
				Permissions: subAdmin.Permissions,
			}, nil
		}
	}
	return nil, apperror.ErrInvalidToken
}

func (s *AuthService) bootstrapAccount() *gateway.AdminAccount {
	return &gateway.AdminAccount{
		ID:          BootstrapAdminID,
		Name:        "Administrator",
		Email:       s.bootstrap.AdminEmail,
		IsAdmin:     true,
		Department:  enum.DepartmentAll,
		Permissions: []string{},
	}
}
