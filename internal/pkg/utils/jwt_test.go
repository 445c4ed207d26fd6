package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "coordinator", "test-secret", time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotID, gotRole, err := ParseJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "coordinator", gotRole)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "admin", "secret-a", time.Hour)
	assert.NoError(t, err)

	_, _, err = ParseJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "admin", "test-secret", -time.Minute)
	assert.NoError(t, err)

	_, _, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, _, err := ParseJWT("not.a.token", "test-secret")
	assert.Error(t, err)
}
