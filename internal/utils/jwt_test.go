package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	ti, err := NewTokenIssuer("test-secret", "HS256")
	require.NoError(t, err)

	token, err := ti.Issue("alice@example.com", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ti.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)
}

func TestTokenIssuer_Algorithms(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			ti, err := NewTokenIssuer("test-secret", alg)
			require.NoError(t, err)

			token, err := ti.Issue("bob@example.com", time.Minute)
			require.NoError(t, err)

			subject, err := ti.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, "bob@example.com", subject)
		})
	}
}

func TestTokenIssuer_RejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewTokenIssuer("test-secret", "RS256")
	require.Error(t, err)

	_, err = NewTokenIssuer("test-secret", "none")
	require.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	ti, err := NewTokenIssuer("test-secret", "HS256")
	require.NoError(t, err)

	token, err := ti.Issue("alice@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ti.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	signer, err := NewTokenIssuer("secret-a", "HS256")
	require.NoError(t, err)
	verifier, err := NewTokenIssuer("secret-b", "HS256")
	require.NoError(t, err)

	token, err := signer.Issue("alice@example.com", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsAlgorithmSwap(t *testing.T) {
	signer, err := NewTokenIssuer("test-secret", "HS512")
	require.NoError(t, err)
	verifier, err := NewTokenIssuer("test-secret", "HS256")
	require.NoError(t, err)

	token, err := signer.Issue("alice@example.com", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsGarbage(t *testing.T) {
	ti, err := NewTokenIssuer("test-secret", "HS256")
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := ti.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
