package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/erp-api/pkg/apperror"
	"github.com/sangkips/erp-api/pkg/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	verifier := NewStaticVerifier([]StaticCredential{{Email: "Admin@ERP.com", PasswordHash: hash, Role: "admin"}})
	return NewAuthService(verifier, utils.NewJWTManager("test-secret", "erp-api", time.Hour), testValidator)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "admin@erp.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Principal.Role)
	assert.NotEmpty(t, out.AccessToken)

	principal, err := svc.Authenticate(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@erp.com", principal.Email)
	assert.Equal(t, "admin", principal.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &LoginInput{Email: "admin@erp.com", Password: "wrong"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials))

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@erp.com", Password: "admin123"})
	assert.True(t, errors.Is(err, apperror.ErrInvalidCredentials))

	_, err = svc.Login(ctx, &LoginInput{Email: "", Password: ""})
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Authenticate("not.a.token")
	assert.True(t, errors.Is(err, apperror.ErrInvalidToken))
}

type stubVerifier struct{ principal *Principal }

func (s stubVerifier) Verify(context.Context, string, string) (*Principal, error) {
	return s.principal, nil
}

func TestAuthServiceAcceptsAnyVerifier(t *testing.T) {
	svc := NewAuthService(stubVerifier{&Principal{Subject: "svc-1", Email: "svc@erp.com", Role: "service"}},
		utils.NewJWTManager("k", "erp-api", time.Minute), testValidator)

	out, err := svc.Login(context.Background(), &LoginInput{Email: "svc@erp.com", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "svc-1", out.Principal.Subject)
}
