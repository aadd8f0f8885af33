// Package common defines shared constants and classified errors used across
// userbook components. Business-rule failures are modeled as *AppError values
// constructed once at the detection site; repository-level misses use the
// ErrNotFound sentinel and are matched with errors.Is.
package common

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matches no row.
	ErrNotFound = errors.New("not found")
)

// AppError is a classified application error carrying a machine-usable code
// and a human-readable message. Detail is optional diagnostic information for
// operators and must never contain passwords, hashes, or the signing key.
type AppError struct {
	Message string
	Code    int
	Detail  string
}

func (e *AppError) Error() string {
	return e.Message
}

// Extensions exposes the code and optional detail to the GraphQL layer, which
// attaches them to the error response as extensions.
func (e *AppError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if e.Detail != "" {
		ext["additionalInfo"] = e.Detail
	}
	return ext
}

// NewWeakPassword reports a password that fails the registration policy.
func NewWeakPassword() *AppError {
	return &AppError{
		Message: "Password must have at least six characters, with at least one digit and one letter",
		Code:    400,
	}
}

// NewEmailTaken reports a duplicate e-mail at registration time.
func NewEmailTaken() *AppError {
	return &AppError{Message: "Email já cadastrado", Code: 409}
}

// NewUserNotFound reports a failed lookup by id or e-mail.
func NewUserNotFound() *AppError {
	return &AppError{Message: "Usuário não encontrado", Code: 400}
}

// NewInvalidCredentials reports a password mismatch at login.
func NewInvalidCredentials() *AppError {
	return &AppError{Message: "Senha inválida", Code: 401}
}

// NewUnauthenticated reports a request that carries no token at all.
func NewUnauthenticated() *AppError {
	return &AppError{Message: "Usuário não autenticado", Code: 400}
}

// NewInvalidToken wraps a token verification failure. The message is the
// verification error verbatim, so callers can distinguish a bad signature
// from a malformed or expired token.
func NewInvalidToken(reason string) *AppError {
	return &AppError{Message: reason, Code: 401}
}

// NewInvalidRequest reports pagination parameters out of bounds.
func NewInvalidRequest() *AppError {
	return &AppError{Message: "Solicitação inválida", Code: 400}
}

// NewHashingFailure wraps an error from the password hashing primitive.
func NewHashingFailure(err error) *AppError {
	return &AppError{Message: "Hash error: " + err.Error(), Code: 500}
}

// NewPersistenceFailure wraps a storage error during user creation. The
// underlying cause goes into Detail so the client-facing message stays stable.
func NewPersistenceFailure(err error) *AppError {
	return &AppError{Message: "Erro ao criar usuário", Code: 500, Detail: err.Error()}
}

// NewInternal wraps any other unexpected failure.
func NewInternal(err error) *AppError {
	return &AppError{Message: "internal error", Code: 500, Detail: err.Error()}
}
