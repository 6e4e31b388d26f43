package services

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adsmock/ads-api-mock/internal/models"
	srvErrors "github.com/adsmock/ads-api-mock/pkg/errors"
)

const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"

	authCodeTTL = 10 * time.Minute
)

// TokenService implements the OAuth stub: it hands out one-time authorization
// codes and exchanges them for HS256-signed JWTs. Everything lives in memory;
// restarting the server invalidates all outstanding codes.
type TokenService struct {
	clientID     string
	clientSecret string
	signingKey   []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration

	mu    sync.Mutex
	codes map[string]time.Time
	now   func() time.Time
}

func NewTokenService(clientID, clientSecret, signingKey string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		clientID:     clientID,
		clientSecret: clientSecret,
		signingKey:   []byte(signingKey),
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
		codes:        make(map[string]time.Time),
		now:          time.Now,
	}
}

// IssueAuthCode is the authorization endpoint's side of the code flow.
func (s *TokenService) IssueAuthCode(clientID string) (string, error) {
	if clientID != s.clientID {
		return "", srvErrors.NewValidationError("unknown client_id")
	}

	code := uuid.NewString()
	s.mu.Lock()
	s.codes[code] = s.now().Add(authCodeTTL)
	s.mu.Unlock()

	return code, nil
}

// ExchangeCode consumes a one-time authorization code and issues an
// access/refresh token pair.
func (s *TokenService) ExchangeCode(clientID, clientSecret, code string) (*models.Token, error) {
	if clientID != s.clientID || clientSecret != s.clientSecret {
		return nil, srvErrors.NewUnauthorizedError("invalid client credentials")
	}

	s.mu.Lock()
	expiry, ok := s.codes[code]
	delete(s.codes, code)
	s.mu.Unlock()

	if !ok || s.now().After(expiry) {
		return nil, srvErrors.NewInvalidGrantError()
	}
	return s.issuePair()
}

// Refresh trades a valid refresh token for a fresh pair.
func (s *TokenService) Refresh(clientID, clientSecret, refreshToken string) (*models.Token, error) {
	if clientID != s.clientID || clientSecret != s.clientSecret {
		return nil, srvErrors.NewUnauthorizedError("invalid client credentials")
	}
	if err := s.validate(refreshToken, "refresh"); err != nil {
		return nil, srvErrors.NewInvalidGrantError()
	}
	return s.issuePair()
}

// ValidateAccessToken checks the bearer token presented on API requests.
func (s *TokenService) ValidateAccessToken(token string) error {
	if err := s.validate(token, "access"); err != nil {
		return srvErrors.NewUnauthorizedError("invalid access token")
	}
	return nil
}

func (s *TokenService) issuePair() (*models.Token, error) {
	access, err := s.sign("access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign("refresh", s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &models.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *TokenService) sign(use string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": s.clientID,
		"use": use,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"jti": uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

func (s *TokenService) validate(token, use string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || claims["use"] != use {
		return srvErrors.NewUnauthorizedError("wrong token use")
	}
	return nil
}
