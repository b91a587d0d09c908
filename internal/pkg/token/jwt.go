// Package token signs and verifies the bearer tokens handed out on sign-in.
// Access and refresh tokens use separate HS256 secrets, so one can never be
// presented as the other.
package token

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessType  = "access"
	refreshType = "refresh"
	issuer      = "backoffice"
)

var (
	ErrInvalidToken     = errors.New("token is invalid")
	ErrWrongTokenType   = errors.New("token has the wrong type")
	ErrSecretIsRequired = errors.New("token secret is required")
)

// Claims is the token payload. Name and IsAdmin are only set on access
// tokens.
type Claims struct {
	UserID  string `json:"uid"`
	Name    string `json:"name,omitempty"`
	IsAdmin bool   `json:"adm,omitempty"`
	Type    string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTManager implements ports.TokenIssuer.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

var _ ports.TokenIssuer = (*JWTManager)(nil)

// NewJWTManager builds a manager. Both secrets are required.
func NewJWTManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*JWTManager, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, ErrSecretIsRequired
	}
	return &JWTManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// Issue signs an access and a refresh token for actor.
func (m *JWTManager) Issue(actor kernel.Actor) (ports.TokenPair, error) {
	if err := actor.ID.Validate(); err != nil {
		return ports.TokenPair{}, fmt.Errorf("issue token: %w", err)
	}

	now := m.now()
	accessExp := now.Add(m.accessTTL)
	access, err := m.sign(&Claims{
		UserID:           actor.ID.String(),
		Name:             actor.Name,
		IsAdmin:          actor.IsAdmin,
		Type:             accessType,
		RegisteredClaims: registered(actor.ID.String(), now, accessExp),
	}, m.accessSecret)
	if err != nil {
		return ports.TokenPair{}, err
	}

	refreshExp := now.Add(m.refreshTTL)
	refresh, err := m.sign(&Claims{
		UserID:           actor.ID.String(),
		Type:             refreshType,
		RegisteredClaims: registered(actor.ID.String(), now, refreshExp),
	}, m.refreshSecret)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{
		Access:           access,
		Refresh:          refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// ParseAccess verifies an access token and rebuilds the actor from it.
func (m *JWTManager) ParseAccess(token string) (kernel.Actor, error) {
	claims, err := m.parse(token, m.accessSecret, accessType)
	if err != nil {
		return kernel.Actor{}, err
	}
	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return kernel.NewActor(id, claims.Name, claims.IsAdmin), nil
}

// ParseRefresh verifies a refresh token and returns the customer ID.
func (m *JWTManager) ParseRefresh(token string) (kernel.UUID, error) {
	claims, err := m.parse(token, m.refreshSecret, refreshType)
	if err != nil {
		return kernel.UUID{}, err
	}
	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return id, nil
}

func (m *JWTManager) sign(claims *Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) parse(raw string, secret []byte, wantType string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != wantType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func registered(subject string, issuedAt, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
}
