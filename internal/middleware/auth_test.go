package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
	"github.com/drvince/womb-backend/internal/utils"
)

type fakeLoader struct {
	users map[string]model.User
}

func (l *fakeLoader) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := l.users[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func testIssuer(t *testing.T) *utils.TokenIssuer {
	t.Helper()
	ti, err := utils.NewTokenIssuer("test-secret", "HS256")
	require.NoError(t, err)
	return ti
}

// invoke runs a request through Authenticate (plus any extra middleware) into
// a handler that echoes the resolved user's email.
func invoke(t *testing.T, issuer *utils.TokenIssuer, loader UserLoader, authHeader string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error {
		u, ok := CurrentUser(c)
		require.True(t, ok)
		return c.String(http.StatusOK, u.Email)
	}
	for i := len(extra) - 1; i >= 0; i-- {
		h = extra[i](h)
	}
	err := Authenticate(issuer, loader)(h)(c)
	require.NoError(t, err)
	return rec
}

func TestAuthenticate_MissingBearer(t *testing.T) {
	issuer := testIssuer(t)
	loader := &fakeLoader{users: map[string]model.User{}}

	rec := invoke(t, issuer, loader, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")

	rec = invoke(t, issuer, loader, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	issuer := testIssuer(t)
	loader := &fakeLoader{users: map[string]model.User{}}

	rec := invoke(t, issuer, loader, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestAuthenticate_UnknownSubject(t *testing.T) {
	issuer := testIssuer(t)
	loader := &fakeLoader{users: map[string]model.User{}}

	token, err := issuer.Issue("ghost@example.com", time.Minute)
	require.NoError(t, err)

	rec := invoke(t, issuer, loader, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not validate credentials")
}

func TestAuthenticate_StatusRecheckedEveryRequest(t *testing.T) {
	issuer := testIssuer(t)
	loader := &fakeLoader{users: map[string]model.User{
		"alice@example.com": {ID: "u-1", Email: "alice@example.com", Role: model.RoleUser, Status: model.StatusActive},
	}}

	token, err := issuer.Issue("alice@example.com", time.Minute)
	require.NoError(t, err)

	rec := invoke(t, issuer, loader, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", rec.Body.String())

	// Deactivate the account; the still-valid token must stop working.
	u := loader.users["alice@example.com"]
	u.Status = model.StatusInactive
	loader.users["alice@example.com"] = u

	rec = invoke(t, issuer, loader, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account is deactivated")

	u.Status = model.StatusPending
	loader.users["alice@example.com"] = u

	rec = invoke(t, issuer, loader, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account is pending activation")
}

func TestRequireRole(t *testing.T) {
	issuer := testIssuer(t)
	loader := &fakeLoader{users: map[string]model.User{
		"user@example.com":  {ID: "u-1", Email: "user@example.com", Role: model.RoleUser, Status: model.StatusActive},
		"admin@example.com": {ID: "u-2", Email: "admin@example.com", Role: model.RoleAdmin, Status: model.StatusActive},
	}}

	userToken, err := issuer.Issue("user@example.com", time.Minute)
	require.NoError(t, err)
	adminToken, err := issuer.Issue("admin@example.com", time.Minute)
	require.NoError(t, err)

	rec := invoke(t, issuer, loader, "Bearer "+userToken, RequireRole(model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient permissions")

	rec = invoke(t, issuer, loader, "Bearer "+adminToken, RequireRole(model.RoleAdmin))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com", rec.Body.String())
}

func TestCurrentUser_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := CurrentUser(c)
	assert.False(t, ok)
}
