// Package auth issues and verifies the bearer tokens that guard the user
// queries, and provides the request gate that turns a raw token into an
// authenticated identity.
package auth

import (
	"time"

	"github.com/dmitrijs2005/userbook/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the signed payload: the user's id and e-mail.
type Claims struct {
	jwt.RegisteredClaims
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Identity is the result of successful token verification.
type Identity struct {
	ID    int64
	Email string
}

// TokenService signs and verifies HS256 JWTs with a process-wide secret.
// Rotating the secret invalidates all outstanding tokens.
type TokenService struct {
	secret           []byte
	sessionValidity  time.Duration
	rememberValidity time.Duration
}

func NewTokenService(secret []byte, sessionValidity, rememberValidity time.Duration) *TokenService {
	return &TokenService{
		secret:           secret,
		sessionValidity:  sessionValidity,
		rememberValidity: rememberValidity,
	}
}

// Issue signs a token for the given identity. The expiry is the long
// remember-me validity when rememberMe is set, the short session validity
// otherwise.
func (s *TokenService) Issue(id int64, email string, rememberMe bool) (string, error) {
	validity := s.sessionValidity
	if rememberMe {
		validity = s.rememberValidity
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		ID:    id,
		Email: email,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", common.NewInternal(err)
	}
	return tokenString, nil
}

// Verify parses and validates a token string. A bad signature, malformed
// token, or expired token fails with the verification error surfaced
// verbatim. An unverified payload is never trusted.
func (s *TokenService) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.NewInvalidToken(err.Error())
	}
	if !token.Valid {
		return nil, common.NewInvalidToken("invalid token")
	}

	return &Identity{ID: claims.ID, Email: claims.Email}, nil
}
