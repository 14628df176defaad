package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drvince/womb-backend/internal/repository"
)

// PublicHandler serves the unauthenticated landing-page endpoints. These sit
// behind the Redis response cache in the router.
type PublicHandler struct {
	Content *repository.ContentRepo
}

func NewPublicHandler(content *repository.ContentRepo) *PublicHandler {
	return &PublicHandler{Content: content}
}

// LatestNews returns the two most recently published news items.
func (h *PublicHandler) LatestNews(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	recs, err := h.Content.LatestNews(ctx, 2)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, recs)
}

// LatestLiveSession returns the most recently scheduled live session.
func (h *PublicHandler) LatestLiveSession(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.LatestLiveSession(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No live session found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Contact returns the current contact block.
func (h *PublicHandler) Contact(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.LatestContact(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No contact information found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}

// About returns the current about block.
func (h *PublicHandler) About(c echo.Context) error {
	ctx, cancel := timeoutCtx(c)
	defer cancel()

	rec, err := h.Content.LatestAbout(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No about information found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rec)
}
