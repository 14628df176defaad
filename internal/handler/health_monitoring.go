package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/middleware"
	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
)

// HealthMonitoringHandler serves the telemetry CRUD: biofeedback, burn
// progress, brain monitoring and heart-brain synchronicity. The four
// entities share the ownership rules of the device controls.
type HealthMonitoringHandler struct {
	Health *repository.HealthRepo
}

func NewHealthMonitoringHandler(health *repository.HealthRepo) *HealthMonitoringHandler {
	return &HealthMonitoringHandler{Health: health}
}

// ownerEmail resolves which user's records the request targets: the caller's
// own email on user routes, the user_email query param on admin routes.
func ownerEmail(c echo.Context, admin bool) (string, error) {
	if !admin {
		u, _ := middleware.CurrentUser(c)
		return u.Email, nil
	}
	email := c.QueryParam("user_email")
	if email == "" {
		return "", errors.New("user_email required")
	}
	return email, nil
}

// ----- biofeedback -----

func (h *HealthMonitoringHandler) CreateBiofeedback(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var b model.Biofeedback
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Health.CreateBiofeedback(ctx, b, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *HealthMonitoringHandler) ListBiofeedback(c echo.Context) error {
	return h.listBiofeedback(c, false)
}

func (h *HealthMonitoringHandler) AdminListBiofeedback(c echo.Context) error {
	return h.listBiofeedback(c, true)
}

func (h *HealthMonitoringHandler) listBiofeedback(c echo.Context, admin bool) error {
	email, err := ownerEmail(c, admin)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Health.ListBiofeedbackByUser(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *HealthMonitoringHandler) getBiofeedback(ctx context.Context, c echo.Context, admin bool) (model.Biofeedback, error) {
	rec, err := h.Health.GetBiofeedback(ctx, c.Param("id"))
	if err != nil {
		return model.Biofeedback{}, err
	}
	if !admin {
		u, _ := middleware.CurrentUser(c)
		if rec.UserEmail != u.Email {
			return model.Biofeedback{}, repository.ErrNotFound
		}
	}
	return rec, nil
}

func (h *HealthMonitoringHandler) GetBiofeedback(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getBiofeedback(ctx, c, false)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) AdminGetBiofeedback(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getBiofeedback(ctx, c, true)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) UpdateBiofeedback(c echo.Context) error {
	return h.updateBiofeedback(c, false)
}

func (h *HealthMonitoringHandler) AdminUpdateBiofeedback(c echo.Context) error {
	return h.updateBiofeedback(c, true)
}

func (h *HealthMonitoringHandler) updateBiofeedback(c echo.Context, admin bool) error {
	var b model.Biofeedback
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getBiofeedback(ctx, c, admin); err != nil {
		return respondRecord(c, model.Biofeedback{}, err)
	}

	actor, _ := middleware.CurrentUser(c)
	b.ID = c.Param("id")
	rec, err := h.Health.UpdateBiofeedback(ctx, b, actor.Email)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) DeleteBiofeedback(c echo.Context) error {
	return h.deleteBiofeedback(c, false)
}

func (h *HealthMonitoringHandler) AdminDeleteBiofeedback(c echo.Context) error {
	return h.deleteBiofeedback(c, true)
}

func (h *HealthMonitoringHandler) deleteBiofeedback(c echo.Context, admin bool) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getBiofeedback(ctx, c, admin); err != nil {
		return respondRecord(c, model.Biofeedback{}, err)
	}
	return respondDeleted(c, h.Health.DeleteBiofeedback(ctx, c.Param("id")))
}

// ----- burn progress -----

func (h *HealthMonitoringHandler) CreateBurnProgress(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var b model.BurnProgress
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Health.CreateBurnProgress(ctx, b, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *HealthMonitoringHandler) ListBurnProgress(c echo.Context) error {
	return h.listBurnProgress(c, false)
}

func (h *HealthMonitoringHandler) AdminListBurnProgress(c echo.Context) error {
	return h.listBurnProgress(c, true)
}

func (h *HealthMonitoringHandler) listBurnProgress(c echo.Context, admin bool) error {
	email, err := ownerEmail(c, admin)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Health.ListBurnProgressByUser(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *HealthMonitoringHandler) getBurnProgress(ctx context.Context, c echo.Context, admin bool) (model.BurnProgress, error) {
	rec, err := h.Health.GetBurnProgress(ctx, c.Param("id"))
	if err != nil {
		return model.BurnProgress{}, err
	}
	if !admin {
		u, _ := middleware.CurrentUser(c)
		if rec.UserEmail != u.Email {
			return model.BurnProgress{}, repository.ErrNotFound
		}
	}
	return rec, nil
}

func (h *HealthMonitoringHandler) GetBurnProgress(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getBurnProgress(ctx, c, false)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) AdminGetBurnProgress(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getBurnProgress(ctx, c, true)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) UpdateBurnProgress(c echo.Context) error {
	return h.updateBurnProgress(c, false)
}

func (h *HealthMonitoringHandler) AdminUpdateBurnProgress(c echo.Context) error {
	return h.updateBurnProgress(c, true)
}

func (h *HealthMonitoringHandler) updateBurnProgress(c echo.Context, admin bool) error {
	var b model.BurnProgress
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getBurnProgress(ctx, c, admin); err != nil {
		return respondRecord(c, model.BurnProgress{}, err)
	}

	actor, _ := middleware.CurrentUser(c)
	b.ID = c.Param("id")
	rec, err := h.Health.UpdateBurnProgress(ctx, b, actor.Email)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) DeleteBurnProgress(c echo.Context) error {
	return h.deleteBurnProgress(c, false)
}

func (h *HealthMonitoringHandler) AdminDeleteBurnProgress(c echo.Context) error {
	return h.deleteBurnProgress(c, true)
}

func (h *HealthMonitoringHandler) deleteBurnProgress(c echo.Context, admin bool) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getBurnProgress(ctx, c, admin); err != nil {
		return respondRecord(c, model.BurnProgress{}, err)
	}
	return respondDeleted(c, h.Health.DeleteBurnProgress(ctx, c.Param("id")))
}

// ----- brain monitoring -----

func (h *HealthMonitoringHandler) CreateBrainMonitoring(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var b model.BrainMonitoring
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Health.CreateBrainMonitoring(ctx, b, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *HealthMonitoringHandler) ListBrainMonitoring(c echo.Context) error {
	return h.listBrainMonitoring(c, false)
}

func (h *HealthMonitoringHandler) AdminListBrainMonitoring(c echo.Context) error {
	return h.listBrainMonitoring(c, true)
}

func (h *HealthMonitoringHandler) listBrainMonitoring(c echo.Context, admin bool) error {
	email, err := ownerEmail(c, admin)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Health.ListBrainMonitoringByUser(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *HealthMonitoringHandler) getBrainMonitoring(ctx context.Context, c echo.Context, admin bool) (model.BrainMonitoring, error) {
	rec, err := h.Health.GetBrainMonitoring(ctx, c.Param("id"))
	if err != nil {
		return model.BrainMonitoring{}, err
	}
	if !admin {
		u, _ := middleware.CurrentUser(c)
		if rec.UserEmail != u.Email {
			return model.BrainMonitoring{}, repository.ErrNotFound
		}
	}
	return rec, nil
}

func (h *HealthMonitoringHandler) GetBrainMonitoring(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getBrainMonitoring(ctx, c, false)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) AdminGetBrainMonitoring(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getBrainMonitoring(ctx, c, true)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) UpdateBrainMonitoring(c echo.Context) error {
	return h.updateBrainMonitoring(c, false)
}

func (h *HealthMonitoringHandler) AdminUpdateBrainMonitoring(c echo.Context) error {
	return h.updateBrainMonitoring(c, true)
}

func (h *HealthMonitoringHandler) updateBrainMonitoring(c echo.Context, admin bool) error {
	var b model.BrainMonitoring
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getBrainMonitoring(ctx, c, admin); err != nil {
		return respondRecord(c, model.BrainMonitoring{}, err)
	}

	actor, _ := middleware.CurrentUser(c)
	b.ID = c.Param("id")
	rec, err := h.Health.UpdateBrainMonitoring(ctx, b, actor.Email)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) DeleteBrainMonitoring(c echo.Context) error {
	return h.deleteBrainMonitoring(c, false)
}

func (h *HealthMonitoringHandler) AdminDeleteBrainMonitoring(c echo.Context) error {
	return h.deleteBrainMonitoring(c, true)
}

func (h *HealthMonitoringHandler) deleteBrainMonitoring(c echo.Context, admin bool) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getBrainMonitoring(ctx, c, admin); err != nil {
		return respondRecord(c, model.BrainMonitoring{}, err)
	}
	return respondDeleted(c, h.Health.DeleteBrainMonitoring(ctx, c.Param("id")))
}

// ----- heart-brain synchronicity -----

func (h *HealthMonitoringHandler) CreateHeartBrain(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var b model.HeartBrainSynchronicity
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Health.CreateHeartBrain(ctx, b, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *HealthMonitoringHandler) ListHeartBrain(c echo.Context) error {
	return h.listHeartBrain(c, false)
}

func (h *HealthMonitoringHandler) AdminListHeartBrain(c echo.Context) error {
	return h.listHeartBrain(c, true)
}

func (h *HealthMonitoringHandler) listHeartBrain(c echo.Context, admin bool) error {
	email, err := ownerEmail(c, admin)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Health.ListHeartBrainByUser(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *HealthMonitoringHandler) getHeartBrain(ctx context.Context, c echo.Context, admin bool) (model.HeartBrainSynchronicity, error) {
	rec, err := h.Health.GetHeartBrain(ctx, c.Param("id"))
	if err != nil {
		return model.HeartBrainSynchronicity{}, err
	}
	if !admin {
		u, _ := middleware.CurrentUser(c)
		if rec.UserEmail != u.Email {
			return model.HeartBrainSynchronicity{}, repository.ErrNotFound
		}
	}
	return rec, nil
}

func (h *HealthMonitoringHandler) GetHeartBrain(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getHeartBrain(ctx, c, false)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) AdminGetHeartBrain(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	rec, err := h.getHeartBrain(ctx, c, true)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) UpdateHeartBrain(c echo.Context) error {
	return h.updateHeartBrain(c, false)
}

func (h *HealthMonitoringHandler) AdminUpdateHeartBrain(c echo.Context) error {
	return h.updateHeartBrain(c, true)
}

func (h *HealthMonitoringHandler) updateHeartBrain(c echo.Context, admin bool) error {
	var b model.HeartBrainSynchronicity
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getHeartBrain(ctx, c, admin); err != nil {
		return respondRecord(c, model.HeartBrainSynchronicity{}, err)
	}

	actor, _ := middleware.CurrentUser(c)
	b.ID = c.Param("id")
	rec, err := h.Health.UpdateHeartBrain(ctx, b, actor.Email)
	return respondRecord(c, rec, err)
}

func (h *HealthMonitoringHandler) DeleteHeartBrain(c echo.Context) error {
	return h.deleteHeartBrain(c, false)
}

func (h *HealthMonitoringHandler) AdminDeleteHeartBrain(c echo.Context) error {
	return h.deleteHeartBrain(c, true)
}

func (h *HealthMonitoringHandler) deleteHeartBrain(c echo.Context, admin bool) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if _, err := h.getHeartBrain(ctx, c, admin); err != nil {
		return respondRecord(c, model.HeartBrainSynchronicity{}, err)
	}
	return respondDeleted(c, h.Health.DeleteHeartBrain(ctx, c.Param("id")))
}

// respondRecord writes the standard single-record response for a repository
// result.
func respondRecord(c echo.Context, rec any, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func respondDeleted(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}
