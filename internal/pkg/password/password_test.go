package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIsDeterministicSHA256(t *testing.T) {
	// stored credentials are plain SHA-256 hex digests
	assert.Equal(t,
		"240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
		Hash("admin123"),
	)
	assert.Equal(t, Hash("monitor123"), Hash("monitor123"))
	assert.NotEqual(t, Hash("admin123"), Hash("admin124"))
	assert.Len(t, Hash("anything"), 64)
}

func TestVerify(t *testing.T) {
	digest := Hash("secret123")
	assert.True(t, Verify("secret123", digest))
	assert.False(t, Verify("secret124", digest))
	assert.False(t, Verify("", digest))
}

func TestValidateStrength(t *testing.T) {
	assert.NoError(t, ValidateStrength("secret123"))
	assert.NoError(t, ValidateStrength("a1b2c3d4"))

	assert.Error(t, ValidateStrength("short1"))
	assert.Error(t, ValidateStrength("12345678"))
	assert.Error(t, ValidateStrength("onlyletters"))
	assert.Error(t, ValidateStrength(""))
}
