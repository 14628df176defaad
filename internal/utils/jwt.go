package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails validation: bad
// signature, wrong algorithm, malformed structure or past expiry. Callers
// must not distinguish these cases in responses.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer signs and validates the bearer tokens used for both the
// short-lived access token and the long-lived refresh token. It is a pure
// function of the configured secret and HMAC algorithm; nothing is persisted.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenIssuer builds an issuer for the given shared secret and algorithm
// name (HS256, HS384 or HS512).
func NewTokenIssuer(secret, algorithm string) (*TokenIssuer, error) {
	m := jwt.GetSigningMethod(algorithm)
	if m == nil {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if _, ok := m.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	return &TokenIssuer{secret: []byte(secret), method: m}, nil
}

// Issue signs a token carrying the subject identity and an absolute expiry.
func (ti *TokenIssuer) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	return jwt.NewWithClaims(ti.method, claims).SignedString(ti.secret)
}

// Validate verifies signature, structure and expiry and returns the subject
// claim. Any failure maps to ErrInvalidToken.
func (ti *TokenIssuer) Validate(token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != ti.method.Alg() {
			return nil, ErrInvalidToken
		}
		return ti.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
