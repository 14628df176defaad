package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/middleware"
	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
	"github.com/drvince/womb-backend/internal/service"
)

// UserAdminHandler exposes the admin-only user management endpoints.
type UserAdminHandler struct {
	Users *service.UserService
}

func NewUserAdminHandler(users *service.UserService) *UserAdminHandler {
	return &UserAdminHandler{Users: users}
}

type userPatchReq struct {
	Role               *string  `json:"role"`
	Status             *string  `json:"user_status"`
	FullName           *string  `json:"full_name"`
	Gender             *string  `json:"gender"`
	DOB                *string  `json:"dob"`
	Nationality        *string  `json:"nationality"`
	Phone              *string  `json:"phone"`
	City               *string  `json:"city"`
	Country            *string  `json:"country"`
	Occupation         *string  `json:"occupation"`
	MaritalStatus      *string  `json:"marital_status"`
	SleepHours         *float64 `json:"sleep_hours"`
	ExerciseFrequency  *string  `json:"exercise_frequency"`
	SmokingStatus      *string  `json:"smoking_status"`
	AlcoholConsumption *string  `json:"alcohol_consumption"`
}

// pagination reads skip/limit query params with sane bounds.
func pagination(c echo.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.QueryParam("skip"))
	if skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 100
	}
	return skip, limit
}

// List returns a page of user accounts.
func (h *UserAdminHandler) List(c echo.Context) error {
	skip, limit := pagination(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	users, err := h.Users.ListUsers(ctx, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user by id.
func (h *UserAdminHandler) Get(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	u, err := h.Users.GetUser(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Update applies a partial update to a user. Status transitions trigger the
// lifecycle notifications downstream in the service.
func (h *UserAdminHandler) Update(c echo.Context) error {
	var req userPatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	patch := service.UserPatch{
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
	}
	if req.Role != nil {
		r, err := model.ParseRole(*req.Role)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
		}
		patch.Role = &r
	}
	if req.Status != nil {
		s, err := model.ParseStatus(*req.Status)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_status"})
		}
		patch.Status = &s
	}

	admin, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	u, err := h.Users.UpdateUser(ctx, c.Param("id"), patch, admin.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete removes a user and every record owned by that user.
func (h *UserAdminHandler) Delete(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	err := h.Users.DeleteUser(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

func timeoutCtx(c echo.Context) (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
