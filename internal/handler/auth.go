package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/config"
	"github.com/drvince/womb-backend/internal/middleware"
	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
	"github.com/drvince/womb-backend/internal/utils"
)

// UserStore is the slice of the user repository the auth endpoints need.
type UserStore interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	SetRefreshToken(ctx context.Context, userID, token string) error
}

// RegistrationNotifier tells the admins about a fresh signup, best-effort.
type RegistrationNotifier interface {
	SendNewRegistration(userEmail, userName string) error
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Issuer   *utils.TokenIssuer
	Users    UserStore
	Notifier RegistrationNotifier
}

func NewAuthHandler(cfg config.Config, issuer *utils.TokenIssuer, users UserStore, notifier RegistrationNotifier) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Issuer: issuer, Users: users, Notifier: notifier}
}

// ----- DTOs -----

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	// A client-supplied status is deliberately ignored: accounts always
	// start Inactive and wait for admin activation.
	Status string `json:"user_status"`

	FullName           string   `json:"full_name"`
	Gender             string   `json:"gender"`
	DOB                string   `json:"dob"`
	Nationality        string   `json:"nationality"`
	Phone              string   `json:"phone"`
	City               string   `json:"city"`
	Country            string   `json:"country"`
	Occupation         string   `json:"occupation"`
	MaritalStatus      string   `json:"marital_status"`
	SleepHours         *float64 `json:"sleep_hours"`
	ExerciseFrequency  string   `json:"exercise_frequency"`
	SmokingStatus      string   `json:"smoking_status"`
	AlcoholConsumption string   `json:"alcohol_consumption"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	IsAdmin      bool   `json:"is_admin,omitempty"`
}

func (h *AuthHandler) accessTTL() time.Duration {
	return time.Duration(h.Cfg.AccessTTLMin) * time.Minute
}

func (h *AuthHandler) refreshTTL() time.Duration {
	return time.Duration(h.Cfg.RefreshTTLMin) * time.Minute
}

// issuePair mints an access+refresh token pair and stores the refresh token
// on the user row, overwriting whatever was there. Concurrent logins race on
// this write; last one wins and the loser's refresh token goes stale.
func (h *AuthHandler) issuePair(ctx context.Context, u model.User) (access, refresh string, err error) {
	access, err = h.Issuer.Issue(u.Email, h.accessTTL())
	if err != nil {
		return "", "", err
	}
	refresh, err = h.Issuer.Issue(u.Email, h.refreshTTL())
	if err != nil {
		return "", "", err
	}
	if err = h.Users.SetRefreshToken(ctx, u.ID, refresh); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Signup creates a user account. The account always starts Inactive; an
// admin must activate it before the first login can succeed.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}

	role := model.RoleUser
	if req.Role != "" {
		r, err := model.ParseRole(req.Role)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
		}
		role = r
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, model.User{
		Email:              req.Email,
		PasswordHash:       hash,
		Role:               role,
		Status:             model.StatusInactive,
		FullName:           req.FullName,
		Gender:             req.Gender,
		DOB:                req.DOB,
		Nationality:        req.Nationality,
		Phone:              req.Phone,
		City:               req.City,
		Country:            req.Country,
		Occupation:         req.Occupation,
		MaritalStatus:      req.MaritalStatus,
		SleepHours:         req.SleepHours,
		ExerciseFrequency:  req.ExerciseFrequency,
		SmokingStatus:      req.SmokingStatus,
		AlcoholConsumption: req.AlcoholConsumption,
	})
	if errors.Is(err, repository.ErrEmailExists) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already registered"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	if h.Notifier != nil {
		go func(email, name string) {
			_ = h.Notifier.SendNewRegistration(email, name)
		}(u.Email, u.FullName)
	}
	return c.JSON(http.StatusOK, u)
}

// authenticate resolves credentials to a user. Unknown email and wrong
// password return the same failure so callers cannot enumerate accounts.
func (h *AuthHandler) authenticate(ctx context.Context, email, password string) (model.User, bool, error) {
	u, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, false, nil
	}
	return u, true, nil
}

// statusError writes the 403 for a blocked lifecycle status. Callers must
// check Status.Blocked first and return this unconditionally; no token may be
// issued once the account is Pending or Inactive.
func statusError(c echo.Context, s model.Status) error {
	if s == model.StatusPending {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Your account is pending activation. Please wait for admin approval."})
	}
	return c.JSON(http.StatusForbidden, echo.Map{"error": "Your account has been deactivated. Please contact support."})
}

// Login verifies credentials, applies the lifecycle gate and returns a fresh
// token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok, err := h.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Incorrect email or password"})
	}
	if u.Status.Blocked() {
		return statusError(c, u.Status)
	}

	access, refresh, err := h.issuePair(ctx, u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"})
}

// AdminLogin is Login plus a role requirement, checked after the credential
// and lifecycle gates.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, ok, err := h.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Incorrect email or password"})
	}
	if u.Status.Blocked() {
		return statusError(c, u.Status)
	}
	if u.Role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Not authorized as admin"})
	}

	access, refresh, err := h.issuePair(ctx, u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access, RefreshToken: refresh, TokenType: "bearer", IsAdmin: true})
}

// Refresh rotates a valid refresh token into a new pair. The presented token
// must equal the stored one exactly; a token superseded by a later login or
// refresh fails here even if it is still time-valid.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	presented := strings.TrimSpace(req.RefreshToken)

	email, err := h.Issuer.Validate(presented)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && u.RefreshToken != presented) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Refresh token does not match or user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	access, refresh, err := h.issuePair(ctx, u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue tokens failed"})
	}
	return c.JSON(http.StatusOK, tokenResp{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"})
}

// Logout clears the stored refresh token for the authenticated user, ending
// the single active session.
func (h *AuthHandler) Logout(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.SetRefreshToken(ctx, u.ID, ""); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully logged out"})
}

// Me returns the authenticated user's own record.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, u)
}
