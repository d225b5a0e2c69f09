package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/config"
	"github.com/mkamande/shopsphere-admin/internal/domain/gateway"
	"github.com/mkamande/shopsphere-admin/pkg/apperror"
	"github.com/mkamande/shopsphere-admin/pkg/utils"
)

type loginFake struct {
	gateway.CommerceGateway
	login func(ctx context.Context, email, password string) (*gateway.AdminAccount, error)
}

func (f *loginFake) Login(ctx context.Context, email, password string) (*gateway.AdminAccount, error) {
	return f.login(ctx, email, password)
}

func newTestJWT() *utils.JWTManager {
	return utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
}

func TestBootstrapLogin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatal(err)
	}
	bootstrap := config.BootstrapConfig{
		AdminEmail:        "root@shopsphere.test",
		AdminPasswordHash: hash,
	}
	commerce := &loginFake{
		login: func(ctx context.Context, email, password string) (*gateway.AdminAccount, error) {
			t.Fatal("bootstrap login must not reach upstream")
			return nil, nil
		},
	}
	svc := NewAuthService(commerce, bootstrap, newTestJWT())

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "root@shopsphere.test",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !out.Account.IsAdmin || out.Account.ID != BootstrapAdminID {
		t.Errorf("account = %+v", out.Account)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("tokens missing")
	}

	// wrong password fails closed without touching upstream
	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "root@shopsphere.test",
		Password: "wrong",
	})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("err = %v, want invalid credentials", err)
	}
}

func TestUpstreamLoginMapsAuthFailures(t *testing.T) {
	commerce := &loginFake{
		login: func(ctx context.Context, email, password string) (*gateway.AdminAccount, error) {
			return nil, apperror.ErrUnauthorized
		},
	}
	svc := NewAuthService(commerce, config.BootstrapConfig{}, newTestJWT())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "x@y.test", Password: "nope"})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("err = %v, want invalid credentials", err)
	}
}

func TestLoginTokenCarriesAuthorizationProfile(t *testing.T) {
	commerce := &loginFake{
		login: func(ctx context.Context, email, password string) (*gateway.AdminAccount, error) {
			return &gateway.AdminAccount{
				ID:          "sa-1",
				Email:       email,
				Department:  "Orders",
				Permissions: []string{"Orders", "Returns"},
			}, nil
		},
	}
	jwtManager := newTestJWT()
	svc := NewAuthService(commerce, config.BootstrapConfig{}, jwtManager)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "sub@shopsphere.test", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := jwtManager.ValidateAccessToken(out.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.AdminID != "sa-1" || claims.IsAdmin || claims.Department != "Orders" {
		t.Errorf("claims = %+v", claims)
	}
	if len(claims.Permissions) != 2 {
		t.Errorf("permissions = %v", claims.Permissions)
	}
}
