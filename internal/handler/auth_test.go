package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drvince/womb-backend/internal/config"
	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
	"github.com/drvince/womb-backend/internal/utils"
)

type fakeUsers struct {
	byEmail map[string]model.User
}

func newFakeUsers(users ...model.User) *fakeUsers {
	s := &fakeUsers{byEmail: map[string]model.User{}}
	for _, u := range users {
		s.byEmail[u.Email] = u
	}
	return s
}

func (s *fakeUsers) Create(_ context.Context, u model.User) (model.User, error) {
	if _, ok := s.byEmail[u.Email]; ok {
		return model.User{}, repository.ErrEmailExists
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	s.byEmail[u.Email] = u
	return u, nil
}

func (s *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUsers) SetRefreshToken(_ context.Context, userID, token string) error {
	for email, u := range s.byEmail {
		if u.ID == userID {
			u.RefreshToken = token
			s.byEmail[email] = u
			return nil
		}
	}
	return repository.ErrNotFound
}

type chanNotifier struct {
	registered chan string
}

func (n *chanNotifier) SendNewRegistration(userEmail, _ string) error {
	n.registered <- userEmail
	return nil
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		JWTAlgorithm:  "HS256",
		AccessTTLMin:  15,
		RefreshTTLMin: 1440,
		BcryptCost:    4,
	}
}

func newAuthHandler(t *testing.T, users *fakeUsers) *AuthHandler {
	t.Helper()
	cfg := testConfig()
	issuer, err := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm)
	require.NoError(t, err)
	return NewAuthHandler(cfg, issuer, users, nil)
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func seedUser(t *testing.T, users *fakeUsers, email, password string, role model.Role, status model.Status) model.User {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)
	u, err := users.Create(context.Background(), model.User{
		Email: email, PasswordHash: hash, Role: role, Status: status, FullName: "Test User",
	})
	require.NoError(t, err)
	return u
}

func TestSignup_ForcesInactiveStatus(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)

	rec := postJSON(t, h.Signup, `{"email":"new@example.com","password":"pw123456","user_status":"Active","full_name":"New User"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, model.StatusInactive, got.Status, "client-supplied status must be ignored")
	assert.Equal(t, model.RoleUser, got.Role)
	assert.Equal(t, "new@example.com", got.Email)

	stored := users.byEmail["new@example.com"]
	assert.Equal(t, model.StatusInactive, stored.Status)
	assert.NotEqual(t, "pw123456", stored.PasswordHash)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "taken@example.com", "pw123456", model.RoleUser, model.StatusActive)

	rec := postJSON(t, h.Signup, `{"email":"taken@example.com","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestSignup_NotifiesAdmins(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	notifier := &chanNotifier{registered: make(chan string, 1)}
	h.Notifier = notifier

	rec := postJSON(t, h.Signup, `{"email":"new@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case email := <-notifier.registered:
		assert.Equal(t, "new@example.com", email)
	case <-time.After(2 * time.Second):
		t.Fatal("registration notification never fired")
	}
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "alice@example.com", "correct-pw", model.RoleUser, model.StatusActive)

	unknown := postJSON(t, h.Login, `{"email":"ghost@example.com","password":"whatever"}`)
	wrongPw := postJSON(t, h.Login, `{"email":"alice@example.com","password":"wrong-pw"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPw.Body.String(),
		"unknown email and bad password must be indistinguishable")
	assert.Contains(t, unknown.Body.String(), "Incorrect email or password")
}

func TestLogin_BlockedStatuses(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "inactive@example.com", "pw", model.RoleUser, model.StatusInactive)
	seedUser(t, users, "pending@example.com", "pw", model.RoleUser, model.StatusPending)

	rec := postJSON(t, h.Login, `{"email":"inactive@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your account has been deactivated. Please contact support.")

	rec = postJSON(t, h.Login, `{"email":"pending@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your account is pending activation. Please wait for admin approval.")
}

func TestLogin_BlockedAccountGetsNoTokens(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "blocked@example.com", "pw", model.RoleUser, model.StatusInactive)
	seedUser(t, users, "blocked-admin@example.com", "pw", model.RoleAdmin, model.StatusPending)

	// Correct credentials on a blocked account: the 403 body must carry the
	// error alone, and nothing may be persisted on the user row.
	for name, attempt := range map[string]struct {
		handler echo.HandlerFunc
		email   string
	}{
		"login":       {h.Login, "blocked@example.com"},
		"admin login": {h.AdminLogin, "blocked-admin@example.com"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(t, attempt.handler, `{"email":"`+attempt.email+`","password":"pw"}`)
			require.Equal(t, http.StatusForbidden, rec.Code)

			body := rec.Body.String()
			assert.NotContains(t, body, "access_token")
			assert.NotContains(t, body, "refresh_token")
			assert.True(t, json.Valid(rec.Body.Bytes()), "403 body must be a single JSON document")

			assert.Empty(t, users.byEmail[attempt.email].RefreshToken,
				"no refresh token may be stored for a blocked account")
		})
	}
}

func TestLogin_Success(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "alice@example.com", "correct-pw", model.RoleUser, model.StatusActive)

	rec := postJSON(t, h.Login, `{"email":"alice@example.com","password":"correct-pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bearer", resp.TokenType)
	assert.False(t, resp.IsAdmin)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	subject, err := h.Issuer.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", subject)

	assert.Equal(t, resp.RefreshToken, users.byEmail["alice@example.com"].RefreshToken,
		"refresh token must be persisted on the user row")
}

func TestAdminLogin_ChecksRoleAfterStatus(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "user@example.com", "pw", model.RoleUser, model.StatusActive)
	seedUser(t, users, "pending-admin@example.com", "pw", model.RoleAdmin, model.StatusPending)

	rec := postJSON(t, h.AdminLogin, `{"email":"user@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not authorized as admin")

	// A pending admin hits the status gate before the role check.
	rec = postJSON(t, h.AdminLogin, `{"email":"pending-admin@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending activation")
}

func TestAdminLogin_Success(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "admin@example.com", "pw", model.RoleAdmin, model.StatusActive)

	rec := postJSON(t, h.AdminLogin, `{"email":"admin@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp tokenResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, resp.RefreshToken, users.byEmail["admin@example.com"].RefreshToken,
		"admin login persists the refresh token too")
}

func TestRefresh_RejectsInvalidAndMismatched(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	u := seedUser(t, users, "alice@example.com", "pw", model.RoleUser, model.StatusActive)

	rec := postJSON(t, h.Refresh, `{"refresh_token":"garbage"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")

	// A structurally valid token that was never stored (or was superseded)
	// must be rejected even though its signature checks out.
	stray, err := h.Issuer.Issue(u.Email, time.Hour)
	require.NoError(t, err)
	rec = postJSON(t, h.Refresh, `{"refresh_token":"`+stray+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Refresh token does not match or user not found")
}

func TestRefresh_RotatesToken(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	seedUser(t, users, "alice@example.com", "pw", model.RoleUser, model.StatusActive)

	login := postJSON(t, h.Login, `{"email":"alice@example.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, login.Code)
	var first tokenResp
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &first))

	// Signing is second-granular via iat/exp; wait so the rotated token
	// differs from the first.
	time.Sleep(1100 * time.Millisecond)

	refreshed := postJSON(t, h.Refresh, `{"refresh_token":"`+first.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, refreshed.Code)
	var second tokenResp
	require.NoError(t, json.Unmarshal(refreshed.Body.Bytes(), &second))

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, second.RefreshToken, users.byEmail["alice@example.com"].RefreshToken)

	// The superseded token no longer matches the stored one.
	replay := postJSON(t, h.Refresh, `{"refresh_token":"`+first.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, replay.Code)
}

func TestLogout_ClearsRefreshToken(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	u := seedUser(t, users, "alice@example.com", "pw", model.RoleUser, model.StatusActive)
	require.NoError(t, users.SetRefreshToken(context.Background(), u.ID, "some.refresh.token"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("auth_user", users.byEmail["alice@example.com"])

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully logged out")
	assert.Empty(t, users.byEmail["alice@example.com"].RefreshToken)
}

func TestMe_ReturnsCurrentUserWithoutSecrets(t *testing.T) {
	users := newFakeUsers()
	h := newAuthHandler(t, users)
	u := seedUser(t, users, "alice@example.com", "pw", model.RoleUser, model.StatusActive)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("auth_user", users.byEmail["alice@example.com"])

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), u.Email)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "refresh_token")
}
