package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "token-test-secret"

func TestGenerateAndParse(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)

	token, exp, err := tm.Generate("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	expected := time.Now().Add(12 * time.Hour)
	assert.Less(t, exp.Sub(expected).Abs(), time.Minute)

	principal, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Username)
}

func TestParse_Missing(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)

	_, err := tm.Parse("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestParse_Tampered(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)

	token, _, err := tm.Generate("alice")
	require.NoError(t, err)

	// Flip one byte inside the signature segment. The final character is
	// avoided because its trailing bits are padding the decoder ignores.
	tampered := []byte(token)
	pos := len(tampered) - 10
	if tampered[pos] == 'A' {
		tampered[pos] = 'B'
	} else {
		tampered[pos] = 'A'
	}

	_, err = tm.Parse(string(tampered))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_WrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)
	other := NewTokenManager("a-different-secret", 12)

	token, _, err := other.Generate("alice")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)

	// Sign an already-expired token with the same secret.
	claims := &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-13 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Parse(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_WrongSigningMethod(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Parse(unsigned)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParse_MissingUsername(t *testing.T) {
	tm := NewTokenManager(testSecret, 12)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
