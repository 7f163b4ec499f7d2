package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 10, ParseInt("", 10))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-3", 10))
	assert.Equal(t, 25, ParseInt("25", 10))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, "2026-03-10", parsed.Format("2006-01-02"))

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ParseDate("10/03/2026")
	assert.Error(t, err)
}

func TestGenerateBookingReference(t *testing.T) {
	pattern := regexp.MustCompile(`^TRV-\d{8}-\d{6}-\d{4}$`)

	ref := GenerateBookingReference()
	assert.True(t, pattern.MatchString(ref), "unexpected reference format: %s", ref)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
