package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ayursutra-server/internal/models"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	user := models.CurrentUser{ID: "u-1", Name: "Asha", Role: models.RolePatient}

	token, expiresAt, err := GenerateSessionToken(user, testSecret, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user, claims.User())
	assert.Equal(t, "u-1", claims.Subject)
}

func TestValidateToken_Rejects(t *testing.T) {
	user := models.CurrentUser{ID: "u-1", Name: "Asha", Role: models.RoleDoctor}

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := GenerateSessionToken(user, testSecret, time.Hour)
		require.NoError(t, err)
		_, err = ValidateToken(token, "other")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, _, err := GenerateSessionToken(user, testSecret, -time.Minute)
		require.NoError(t, err)
		_, err = ValidateToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		token, _, err := GenerateSessionToken(models.CurrentUser{ID: "u-2", Name: "Eve", Role: "root"}, testSecret, time.Hour)
		require.NoError(t, err)
		_, err = ValidateToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "u-1", Role: models.RoleAdmin}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ValidateToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateToken("not-a-token", testSecret)
		assert.Error(t, err)
	})
}
