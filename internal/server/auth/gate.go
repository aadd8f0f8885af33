package auth

import (
	"context"

	"github.com/dmitrijs2005/userbook/internal/common"
)

type ctxKey string

const tokenKey ctxKey = "authToken"

// WithToken returns a context carrying the raw bearer token extracted from
// the request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the raw bearer token, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// Gate authenticates requests. It performs no authorization beyond "is this
// a valid, non-expired token": any authenticated identity may query any
// user's data.
type Gate struct {
	tokens *TokenService
}

func NewGate(tokens *TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// Authenticate extracts the bearer token from the context and verifies it.
// A missing token and an invalid token fail with distinct errors, and the
// verification failure is passed through untouched.
func (g *Gate) Authenticate(ctx context.Context) (*Identity, error) {
	token, ok := TokenFromContext(ctx)
	if !ok {
		return nil, common.NewUnauthenticated()
	}
	return g.tokens.Verify(token)
}
