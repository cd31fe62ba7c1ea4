package http

import (
	"net/http"

	"advising-backend/internal/domain/catalog"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type CatalogHandler struct {
	catalog catalog.Repository
	log     zerolog.Logger
}

func NewCatalogHandler(repo catalog.Repository, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: repo, log: log.With().Str("component", "catalog_handler").Logger()}
}

func (h *CatalogHandler) ListCourses(c echo.Context) error {
	courses, err := h.catalog.ListCourses(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("course catalog fetch failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch courses"})
	}
	if courses == nil {
		courses = []catalog.Course{}
	}
	return c.JSON(http.StatusOK, courses)
}

func (h *CatalogHandler) ListPrereqs(c echo.Context) error {
	prereqs, err := h.catalog.ListPrereqs(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("prereq catalog fetch failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch prerequisites"})
	}
	if prereqs == nil {
		prereqs = []catalog.Prereq{}
	}
	return c.JSON(http.StatusOK, prereqs)
}
