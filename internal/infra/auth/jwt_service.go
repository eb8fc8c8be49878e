// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
)

// tokenTTL is the fixed validity window of a session token.
const tokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. It fails fast when the
// signing secret is absent so the process never serves unsigned tokens.
func NewJWTService(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.Auth.TokenSecret == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.TokenSecret,
		ttl:    tokenTTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed HS256 token asserting the given account id,
// expiring exactly one hour after issuance.
func (s *jwtService) Issue(userID int64) (string, error) {
	issuedAt := s.now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
