package service

import (
	"context"
	"strings"
	"time"

	"github.com/sangkips/erp-api/internal/domain/schema"
	"github.com/sangkips/erp-api/pkg/apperror"
	"github.com/sangkips/erp-api/pkg/utils"
)

// Principal is an authenticated caller
type Principal struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// CredentialVerifier checks an identifier/secret pair. It returns the
// principal on success and apperror.ErrInvalidCredentials on mismatch.
// Implementations are independent of the ERP entity store.
type CredentialVerifier interface {
	Verify(ctx context.Context, identifier, secret string) (*Principal, error)
}

// StaticCredential is one account known to a StaticVerifier
type StaticCredential struct {
	Email        string
	PasswordHash string
	Role         string
}

// StaticVerifier verifies against a fixed list of bcrypt-hashed accounts
type StaticVerifier struct {
	accounts map[string]StaticCredential
}

// NewStaticVerifier indexes accounts by lower-cased email
func NewStaticVerifier(accounts []StaticCredential) *StaticVerifier {
	index := make(map[string]StaticCredential, len(accounts))
	for _, acc := range accounts {
		index[strings.ToLower(strings.TrimSpace(acc.Email))] = acc
	}
	return &StaticVerifier{accounts: index}
}

// Verify implements CredentialVerifier
func (v *StaticVerifier) Verify(ctx context.Context, identifier, secret string) (*Principal, error) {
	email := strings.ToLower(strings.TrimSpace(identifier))
	acc, ok := v.accounts[email]
	if !ok || !utils.CheckPasswordHash(secret, acc.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}
	return &Principal{Subject: email, Email: email, Role: acc.Role}, nil
}

// AuthService issues access tokens for verified credentials
type AuthService struct {
	verifier   CredentialVerifier
	jwtManager *utils.JWTManager
	validator  *schema.Validator
}

// NewAuthService creates a new auth service
func NewAuthService(verifier CredentialVerifier, jwtManager *utils.JWTManager, validator *schema.Validator) *AuthService {
	return &AuthService{verifier: verifier, jwtManager: jwtManager, validator: validator}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput represents the login output
type LoginOutput struct {
	Principal   *Principal `json:"user"`
	AccessToken string     `json:"accessToken"`
	ExpiresAt   time.Time  `json:"expiresAt"`
}

// Login verifies the credentials and returns a signed access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if err := s.validator.Check(nil, input); err != nil {
		return nil, err
	}

	principal, err := s.verifier.Verify(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwtManager.GenerateAccessToken(principal.Subject, principal.Email, "", principal.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Principal:   principal,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate resolves an access token back to its principal
func (s *AuthService) Authenticate(token string) (*Principal, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return &Principal{Subject: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}
