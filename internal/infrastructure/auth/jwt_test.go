package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, expiresAt, err := svc.IssueAccessToken("stf_abc123", "staff")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "stf_abc123", claims.SubjectSID)
	assert.Equal(t, "staff", claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", 60).IssueAccessToken("admin", "admin")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := NewJWTService("secret", 60).Verify("not.a.token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, hasher.Verify("s3cret-password", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
	assert.Error(t, hasher.Verify("s3cret-password", "not-a-hash"))
}
