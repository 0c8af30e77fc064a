package rest

import (
	"context"
	"net/http"
	"time"

	"careerPlatform/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	AdminHandler struct {
		engine  EngineAdmin
		timeout time.Duration
	}

	EngineAdmin interface {
		Stats() domain.EngineStats
		DebugQuery(ctx context.Context, courseID string, limit int) ([]domain.DebugRecommendation, error)
	}
)

func NewAdminHandler(engine EngineAdmin) *AdminHandler {
	return &AdminHandler{
		engine:  engine,
		timeout: 10 * time.Second,
	}
}

// GET /api/v1/admin/recommender/stats
func (h *AdminHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.engine.Stats()))
}

// GET /api/v1/admin/recommender/debug?course_id=ml_001&n=10
func (h *AdminHandler) DebugQuery(c echo.Context) error {
	courseID := c.QueryParam("course_id")
	if courseID == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "course_id is required"})
	}

	n := 0
	if err := echo.QueryParamsBinder(c).Int("n", &n).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.engine.DebugQuery(ctx, courseID, n)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
