package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmart/tracker-service/internal/models"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	user := &models.User{ID: 42, Username: "alice"}

	token, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
	assert.NotEmpty(t, claims.ID, "jti must be set")
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseToken_UniqueJTIPerToken(t *testing.T) {
	user := &models.User{ID: 1, Username: "alice"}

	first, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	c1, err := ParseToken(first, testSecret)
	require.NoError(t, err)
	c2, err := ParseToken(second, testSecret)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(&models.User{ID: 1, Username: "alice"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(&models.User{ID: 1, Username: "alice"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.Error(t, err)
}
