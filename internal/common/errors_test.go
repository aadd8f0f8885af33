package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	err := NewEmailTaken()
	assert.Equal(t, "Email já cadastrado", err.Error())
	assert.Equal(t, 409, err.Code)
}

func TestAppError_Extensions(t *testing.T) {
	t.Parallel()

	ext := NewInvalidRequest().Extensions()
	assert.Equal(t, 400, ext["code"])
	_, hasDetail := ext["additionalInfo"]
	assert.False(t, hasDetail, "detail should be omitted when empty")

	ext = NewPersistenceFailure(errors.New("connection refused")).Extensions()
	assert.Equal(t, 500, ext["code"])
	assert.Equal(t, "connection refused", ext["additionalInfo"])
}

func TestAppError_MatchableWithErrorsAs(t *testing.T) {
	t.Parallel()

	var err error = NewUnauthenticated()

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Usuário não autenticado", appErr.Message)
	assert.Equal(t, 400, appErr.Code)
}

func TestNewInvalidToken_VerbatimMessage(t *testing.T) {
	t.Parallel()

	err := NewInvalidToken("token signature is invalid")
	assert.Equal(t, "token signature is invalid", err.Message)
	assert.Equal(t, 401, err.Code)
}
