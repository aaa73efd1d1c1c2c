package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager(TokenConfig{AccessSecret: []byte("secret")})
	id := uuid.New()

	token, err := m.GenerateAccessToken(User{ID: id, DisplayName: "أ. سارة", Role: RoleTeacher})
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, RoleTeacher, claims.Role)
	assert.Equal(t, "nafes", claims.Issuer)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewManager(TokenConfig{AccessSecret: []byte("one")})
	verifier := NewManager(TokenConfig{AccessSecret: []byte("two")})

	token, err := issuer.GenerateAccessToken(User{ID: uuid.New(), Role: RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsOtherIssuer(t *testing.T) {
	issuer := NewManager(TokenConfig{AccessSecret: []byte("secret"), Issuer: "elsewhere"})
	verifier := NewManager(TokenConfig{AccessSecret: []byte("secret")})

	token, err := issuer.GenerateAccessToken(User{ID: uuid.New(), Role: RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpired(t *testing.T) {
	m := NewManager(TokenConfig{AccessSecret: []byte("secret"), AccessTTL: -time.Minute})

	token, err := m.GenerateAccessToken(User{ID: uuid.New(), Role: RoleStudent})
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
