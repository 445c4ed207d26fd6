package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword("hunter2", hash))
	assert.False(t, CheckPassword("hunter3", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey("st-", 12)
	assert.NoError(t, err)
	b, err := GenerateKey("st-", 12)
	assert.NoError(t, err)

	assert.Len(t, a, 15)
	assert.Contains(t, a, "st-")
	assert.NotEqual(t, a, b)
}
