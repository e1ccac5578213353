package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	assert.True(t, Verify("correct horse battery staple", encoded))
	assert.False(t, Verify("wrong password", encoded))
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", ""))
	assert.False(t, Verify("anything", "$argon2id$v=19$garbage"))
	assert.False(t, Verify("anything", "plaintext-stored-by-mistake"))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same password")
	require.NoError(t, err)
	b, err := Hash("same password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
