package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/service"
)

type Catalog interface {
	ListExperiences(ctx context.Context, f service.CatalogFilter) ([]model.Experience, error)
	GetExperience(ctx context.Context, id string) (model.Experience, error)
}

// ExperienceHandler serves the public catalog.
type ExperienceHandler struct {
	Catalog Catalog
}

func NewExperienceHandler(cat Catalog) *ExperienceHandler { return &ExperienceHandler{Catalog: cat} }

// List handles GET /api/experiences?category=&search=.
func (h *ExperienceHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exps, err := h.Catalog.ListExperiences(ctx, service.CatalogFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err, "Failed to fetch experiences")
	}
	return c.JSON(http.StatusOK, echo.Map{"experiences": exps})
}

// Get handles GET /api/experiences/:id.
func (h *ExperienceHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	e, err := h.Catalog.GetExperience(ctx, c.Param("id"))
	if err != nil {
		return writeError(c, err, "Failed to fetch experience")
	}
	return c.JSON(http.StatusOK, echo.Map{"experience": e})
}
