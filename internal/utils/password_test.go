package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("duynh@01011990", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "duynh@01011990", hash)

	assert.True(t, CheckPassword("duynh@01011990", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("", bcrypt.MinCost)
	assert.Error(t, err)
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret", 1000)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("secret", "not-a-hash"))
}
