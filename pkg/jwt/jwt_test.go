package jwt

import (
	"testing"

	"insight-srv/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.ErrorIs(t, err, ErrSecretTooShort)

	_, err = New(Config{SecretKey: secret})
	assert.NoError(t, err)
}

func TestVerify(t *testing.T) {
	m, err := New(Config{SecretKey: secret, Issuer: "smap-auth"})
	require.NoError(t, err)

	token, err := m.GenerateToken("u-1", "ana@example.com", "USER")
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "u-1", p.Subject)
	assert.Equal(t, "ana@example.com", p.Username)
	assert.Equal(t, "smap-auth", p.Issuer)
	assert.NotEmpty(t, p.Id)
	assert.Greater(t, p.ExpiresAt, p.IssuedAt)
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	m, err := New(Config{SecretKey: secret})
	require.NoError(t, err)

	other, err := New(Config{SecretKey: "ffffffffffffffffffffffffffffffff"})
	require.NoError(t, err)
	foreign, err := other.GenerateToken("u", "", "")
	require.NoError(t, err)

	_, err = m.Verify(foreign)
	assert.Error(t, err)
	_, err = m.Verify("a.b.c")
	assert.Error(t, err)
}

func TestCreateTokenFromPayload(t *testing.T) {
	m, err := New(Config{SecretKey: secret})
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "u-9", Role: "ADMIN"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", p.Role)
	assert.Equal(t, "u-9", scope.NewScope(p).UserID)
}
