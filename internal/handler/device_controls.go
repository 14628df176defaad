package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/middleware"
	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
)

// DeviceHandler serves the device-control CRUD. User routes only ever touch
// records owned by the caller; the admin routes reach any record.
type DeviceHandler struct {
	Devices *repository.DeviceRepo
}

func NewDeviceHandler(devices *repository.DeviceRepo) *DeviceHandler {
	return &DeviceHandler{Devices: devices}
}

type switchReq struct {
	Enabled *bool `json:"enabled"`
}

type tempTankReq struct {
	TempTank *float64 `json:"temp_tank"`
}

type ledColorReq struct {
	LedColor string `json:"led_color"`
}

func notFoundRecord(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": "Record not found"})
}

// ----- boolean switch devices (sound, steam, water-pump, nano-flicker) -----

func (h *DeviceHandler) CreateSwitch(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var req switchReq
	if err := c.Bind(&req); err != nil || req.Enabled == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "enabled required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.CreateSwitch(ctx, c.Param("device"), *req.Enabled, u.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Unknown device"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) ListSwitch(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Devices.ListSwitchByUser(ctx, c.Param("device"), u.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Unknown device"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

// getOwnSwitch loads a switch record and enforces ownership. A record owned
// by someone else reads as not found so ids cannot be probed.
func (h *DeviceHandler) getOwnSwitch(c echo.Context) (model.SwitchRecord, error) {
	u, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.GetSwitch(ctx, c.Param("device"), c.Param("id"))
	if err != nil {
		return model.SwitchRecord{}, err
	}
	if rec.UserEmail != u.Email {
		return model.SwitchRecord{}, repository.ErrNotFound
	}
	return rec, nil
}

func (h *DeviceHandler) GetSwitch(c echo.Context) error {
	rec, err := h.getOwnSwitch(c)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) UpdateSwitch(c echo.Context) error {
	var req switchReq
	if err := c.Bind(&req); err != nil || req.Enabled == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "enabled required"})
	}
	if _, err := h.getOwnSwitch(c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	u, _ := middleware.CurrentUser(c)
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.UpdateSwitch(ctx, c.Param("device"), c.Param("id"), *req.Enabled, u.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) DeleteSwitch(c echo.Context) error {
	if _, err := h.getOwnSwitch(c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Devices.DeleteSwitch(ctx, c.Param("device"), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}

// ----- tank temperature -----

func (h *DeviceHandler) CreateTempTank(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var req tempTankReq
	if err := c.Bind(&req); err != nil || req.TempTank == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "temp_tank required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.CreateTempTank(ctx, *req.TempTank, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) ListTempTanks(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Devices.ListTempTanksByUser(ctx, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *DeviceHandler) getOwnTempTank(c echo.Context) (model.TempTank, error) {
	u, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.GetTempTank(ctx, c.Param("id"))
	if err != nil {
		return model.TempTank{}, err
	}
	if rec.UserEmail != u.Email {
		return model.TempTank{}, repository.ErrNotFound
	}
	return rec, nil
}

func (h *DeviceHandler) GetTempTank(c echo.Context) error {
	rec, err := h.getOwnTempTank(c)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) UpdateTempTank(c echo.Context) error {
	var req tempTankReq
	if err := c.Bind(&req); err != nil || req.TempTank == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "temp_tank required"})
	}
	if _, err := h.getOwnTempTank(c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	u, _ := middleware.CurrentUser(c)
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.UpdateTempTank(ctx, c.Param("id"), *req.TempTank, u.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) DeleteTempTank(c echo.Context) error {
	if _, err := h.getOwnTempTank(c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Devices.DeleteTempTank(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}

// ----- LED color -----

func (h *DeviceHandler) CreateLedColor(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)
	var req ledColorReq
	if err := c.Bind(&req); err != nil || req.LedColor == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "led_color required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.CreateLedColor(ctx, req.LedColor, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) ListLedColors(c echo.Context) error {
	u, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Devices.ListLedColorsByUser(ctx, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *DeviceHandler) getOwnLedColor(c echo.Context) (model.LedColor, error) {
	u, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.GetLedColor(ctx, c.Param("id"))
	if err != nil {
		return model.LedColor{}, err
	}
	if rec.UserEmail != u.Email {
		return model.LedColor{}, repository.ErrNotFound
	}
	return rec, nil
}

func (h *DeviceHandler) GetLedColor(c echo.Context) error {
	rec, err := h.getOwnLedColor(c)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) UpdateLedColor(c echo.Context) error {
	var req ledColorReq
	if err := c.Bind(&req); err != nil || req.LedColor == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "led_color required"})
	}
	if _, err := h.getOwnLedColor(c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	u, _ := middleware.CurrentUser(c)
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.UpdateLedColor(ctx, c.Param("id"), req.LedColor, u.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) DeleteLedColor(c echo.Context) error {
	if _, err := h.getOwnLedColor(c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Devices.DeleteLedColor(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}

// ----- admin variants -----

// AdminListSwitch lists a device's records across users, optionally filtered
// by the user_email query param.
func (h *DeviceHandler) AdminListSwitch(c echo.Context) error {
	email := c.QueryParam("user_email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_email required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Devices.ListSwitchByUser(ctx, c.Param("device"), email)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Unknown device"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *DeviceHandler) AdminGetSwitch(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.GetSwitch(ctx, c.Param("device"), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) AdminUpdateSwitch(c echo.Context) error {
	var req switchReq
	if err := c.Bind(&req); err != nil || req.Enabled == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "enabled required"})
	}
	admin, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.UpdateSwitch(ctx, c.Param("device"), c.Param("id"), *req.Enabled, admin.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) AdminDeleteSwitch(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Devices.DeleteSwitch(ctx, c.Param("device"), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}

func (h *DeviceHandler) AdminListTempTanks(c echo.Context) error {
	email := c.QueryParam("user_email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_email required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Devices.ListTempTanksByUser(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *DeviceHandler) AdminGetTempTank(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.GetTempTank(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) AdminUpdateTempTank(c echo.Context) error {
	var req tempTankReq
	if err := c.Bind(&req); err != nil || req.TempTank == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "temp_tank required"})
	}
	admin, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.UpdateTempTank(ctx, c.Param("id"), *req.TempTank, admin.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) AdminDeleteTempTank(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Devices.DeleteTempTank(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}

func (h *DeviceHandler) AdminListLedColors(c echo.Context) error {
	email := c.QueryParam("user_email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_email required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Devices.ListLedColorsByUser(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *DeviceHandler) AdminGetLedColor(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.GetLedColor(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) AdminUpdateLedColor(c echo.Context) error {
	var req ledColorReq
	if err := c.Bind(&req); err != nil || req.LedColor == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "led_color required"})
	}
	admin, _ := middleware.CurrentUser(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Devices.UpdateLedColor(ctx, c.Param("id"), req.LedColor, admin.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundRecord(c)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *DeviceHandler) AdminDeleteLedColor(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	if err := h.Devices.DeleteLedColor(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundRecord(c)
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Record deleted successfully"})
}
