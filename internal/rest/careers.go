package rest

import (
	"context"
	"net/http"
	"time"

	"careerPlatform/domain"
	"careerPlatform/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	CareerHandler struct {
		careerService  CareerService
		roadmapService RoadmapService
		timeout        time.Duration
	}

	CareerService interface {
		Careers(ctx context.Context) ([]domain.Career, error)
		Description(careerID string) string
		QACount(careerID string) int
	}

	RoadmapService interface {
		Roadmap(ctx context.Context, careerID string) (domain.Roadmap, error)
		LearningPath(ctx context.Context, careerID, skillLevel string) (domain.LearningPath, error)
	}

	CareerListResponse struct {
		Careers      []domain.Career `json:"careers"`
		TotalCareers int             `json:"total_careers"`
	}

	CareerInfo struct {
		CareerID    string `json:"career_id"`
		CareerName  string `json:"career_name"`
		Description string `json:"description,omitempty"`
		QACount     int    `json:"qa_count,omitempty"`
	}

	RoadmapResponse struct {
		CareerInfo CareerInfo     `json:"career_info"`
		Roadmap    domain.Roadmap `json:"roadmap"`
	}

	LearningPathResponse struct {
		CareerInfo   CareerInfo          `json:"career_info"`
		LearningPath domain.LearningPath `json:"learning_path"`
	}
)

func NewCareerHandler(careerService CareerService, roadmapService RoadmapService) *CareerHandler {
	return &CareerHandler{
		careerService:  careerService,
		roadmapService: roadmapService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/careers
func (h *CareerHandler) GetCareers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	careers, err := h.careerService.Careers(ctx)
	if err != nil {
		logger.Error("Failed to list careers", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(CareerListResponse{
		Careers:      careers,
		TotalCareers: len(careers),
	}))
}

// GET /api/v1/roadmap/:career_id
func (h *CareerHandler) GetRoadmap(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	careerID := c.Param("career_id")
	roadmap, err := h.roadmapService.Roadmap(ctx, careerID)
	if err != nil {
		logger.Error("Failed to generate roadmap", "career_id", careerID, "error", err.Error())
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RoadmapResponse{
		CareerInfo: CareerInfo{
			CareerID:    roadmap.CareerID,
			CareerName:  roadmap.CareerName,
			Description: h.careerService.Description(careerID),
			QACount:     h.careerService.QACount(careerID),
		},
		Roadmap: roadmap,
	}))
}

// GET /api/v1/learning-path/:career_id?skill_level=beginner
func (h *CareerHandler) GetLearningPath(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	careerID := c.Param("career_id")
	skillLevel := c.QueryParam("skill_level")
	if skillLevel == "" {
		skillLevel = "beginner"
	}

	path, err := h.roadmapService.LearningPath(ctx, careerID, skillLevel)
	if err != nil {
		logger.Error("Failed to generate learning path", "career_id", careerID, "error", err.Error())
		return writeServiceError(c, err)
	}

	for i := range path.Path {
		for j := range path.Path[i].Courses {
			path.Path[i].Courses[j].RelevanceScore = round3(path.Path[i].Courses[j].RelevanceScore)
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(LearningPathResponse{
		CareerInfo: CareerInfo{
			CareerID:   careerID,
			CareerName: path.CareerGoal,
		},
		LearningPath: path,
	}))
}
