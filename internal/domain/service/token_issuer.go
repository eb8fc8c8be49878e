package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
// The account id is the only identity claim; everything else is the
// standard time-bounding metadata.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenIssuer defines the interface for creating and validating signed
// session tokens. Tokens are not persisted server-side; validity is
// determined solely by signature and expiry.
type TokenIssuer interface {
	// Issue creates a signed token asserting the given account id,
	// valid for a fixed window from the moment of issuance.
	Issue(userID int64) (string, error)

	// Validate checks the signature and expiry of a token string and
	// returns its claims when valid.
	Validate(tokenString string) (*Claims, error)
}
