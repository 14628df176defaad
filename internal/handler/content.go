package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/model"
	"github.com/drvince/womb-backend/internal/repository"
)

// ContentHandler serves site content (news, live sessions, contact, about).
// Writes are admin-only; users get read access to news and live sessions.
type ContentHandler struct {
	Content *repository.ContentRepo
}

func NewContentHandler(content *repository.ContentRepo) *ContentHandler {
	return &ContentHandler{Content: content}
}

// ----- news -----

func (h *ContentHandler) CreateNews(c echo.Context) error {
	var n model.News
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if n.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.CreateNews(ctx, n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ContentHandler) ListNews(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Content.ListNews(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *ContentHandler) GetNews(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.GetNews(ctx, c.Param("id"))
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) UpdateNews(c echo.Context) error {
	var n model.News
	if err := c.Bind(&n); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	n.ID = c.Param("id")

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.UpdateNews(ctx, n)
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) DeleteNews(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	return respondDeleted(c, h.Content.DeleteNews(ctx, c.Param("id")))
}

// ----- live sessions -----

func (h *ContentHandler) CreateLiveSession(c echo.Context) error {
	var s model.LiveSession
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if s.SessionTitle == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "session_title required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.CreateLiveSession(ctx, s)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ContentHandler) ListLiveSessions(c echo.Context) error {
	skip, limit := pagination(c)

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Content.ListLiveSessions(ctx, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *ContentHandler) GetLiveSession(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.GetLiveSession(ctx, c.Param("id"))
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) UpdateLiveSession(c echo.Context) error {
	var s model.LiveSession
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s.ID = c.Param("id")

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.UpdateLiveSession(ctx, s)
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) DeleteLiveSession(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	return respondDeleted(c, h.Content.DeleteLiveSession(ctx, c.Param("id")))
}

// ----- contact -----

func (h *ContentHandler) CreateContact(c echo.Context) error {
	var ct model.Contact
	if err := c.Bind(&ct); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if ct.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.CreateContact(ctx, ct)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ContentHandler) GetContact(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.GetContact(ctx, c.Param("id"))
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) UpdateContact(c echo.Context) error {
	var ct model.Contact
	if err := c.Bind(&ct); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ct.ID = c.Param("id")

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.UpdateContact(ctx, ct)
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) DeleteContact(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	return respondDeleted(c, h.Content.DeleteContact(ctx, c.Param("id")))
}

// ----- about -----

func (h *ContentHandler) CreateAbout(c echo.Context) error {
	var a model.About
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if a.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.CreateAbout(ctx, a)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *ContentHandler) GetAbout(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.GetAbout(ctx, c.Param("id"))
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) UpdateAbout(c echo.Context) error {
	var a model.About
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	a.ID = c.Param("id")

	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.UpdateAbout(ctx, a)
	return respondRecord(c, rec, err)
}

func (h *ContentHandler) DeleteAbout(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()
	return respondDeleted(c, h.Content.DeleteAbout(ctx, c.Param("id")))
}
