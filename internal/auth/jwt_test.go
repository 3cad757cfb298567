package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	identity := &Identity{Role: RoleMerchant, ID: 5, Name: "Summit Teahouse"}

	token, err := GenerateToken(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, role, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, RoleMerchant, role)
}

// The signing key must be read per call: JWT_SECRET only lands in the
// environment once main has loaded .env, well after this package is
// initialized.
func TestTokenUsesSecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	token, err := GenerateToken(&Identity{Role: RoleAdmin, ID: 0, Name: "Administrator"})
	require.NoError(t, err)

	_, _, err = ValidateToken(token)
	require.NoError(t, err)

	// Under a different key (here: the fallback) the same token must
	// fail verification, proving the configured value signed it.
	t.Setenv("JWT_SECRET", "")
	_, _, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Tampered(t *testing.T) {
	token, err := GenerateToken(&Identity{Role: RoleTourist, ID: 7, Name: "Li Hua"})
	require.NoError(t, err)

	// Flip the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[2] = "AAAA" + parts[2][4:]

	_, _, err = ValidateToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, _, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
