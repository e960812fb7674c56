package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/sky_delivery_backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestEmployeeJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateEmployeeJWT(42, testSecret, time.Hour, "sky-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	employeeID, err := utils.ParseEmployeeJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), employeeID)
}

func TestParseEmployeeJWT_Rejects(t *testing.T) {
	expired, _, err := utils.GenerateEmployeeJWT(1, testSecret, -time.Minute, "sky-test")
	require.NoError(t, err)

	wrongSecret, _, err := utils.GenerateEmployeeJWT(1, "other-secret", time.Hour, "sky-test")
	require.NoError(t, err)

	nonNumeric, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = utils.ParseEmployeeJWT(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = utils.ParseEmployeeJWT(wrongSecret, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = utils.ParseEmployeeJWT(nonNumeric, testSecret)
	assert.ErrorIs(t, err, utils.ErrInvalidSubject)

	_, err = utils.ParseEmployeeJWT("not-a-jwt", testSecret)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("123456")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("123456", hash))
	assert.False(t, utils.CheckPasswordHash("654321", hash))
	assert.False(t, utils.CheckPasswordHash("123456", "not-a-hash"))
}
