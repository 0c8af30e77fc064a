package rest

import (
	"context"
	"net/http"
	"time"

	"careerPlatform/business/recommender"
	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
	"careerPlatform/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
		timeout          time.Duration
	}

	RecommendService interface {
		SimilarCourses(ctx context.Context, courseID string, limit int) ([]domain.CourseRecommendation, error)
		CoursesBySkills(ctx context.Context, skills []string, limit int) ([]domain.CourseRecommendation, error)
		PersonalizedCourses(ctx context.Context, profile domain.UserProfile, limit int) ([]domain.CourseRecommendation, error)
		TrendingCourses(ctx context.Context, minRating float64, limit int) ([]domain.CourseRecommendation, error)
		LogFeedback(ctx context.Context, event domain.InteractionEvent) error
	}

	SkillBasedRequest struct {
		Skills []string `json:"skills" validate:"required,min=1"`
		Limit  int      `json:"limit"`
	}

	PersonalizedRequest struct {
		UserID               string   `json:"user_id"`
		PreferredSkills      []string `json:"preferred_skills"`
		DifficultyPreference string   `json:"difficulty_preference" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
		TimeAvailability     string   `json:"time_availability"`
		BudgetPreference     string   `json:"budget_preference" validate:"omitempty,oneof=free paid any"`
		LearningStyle        string   `json:"learning_style"`
		CareerGoals          []string `json:"career_goals"`
		Limit                int      `json:"limit"`
	}

	TrendingQuery struct {
		MinRating float64 `query:"min_rating"`
		Limit     int     `query:"limit"`
	}

	FeedbackRequest struct {
		UserID    string         `json:"user_id" validate:"required"`
		CourseID  string         `json:"course_id" validate:"required"`
		EventType string         `json:"event_type" validate:"required,oneof=view enroll complete rate"`
		Rating    float64        `json:"rating"`
		Context   map[string]any `json:"context"`
	}

	RecommendationsResponse struct {
		TargetSkills         []string                      `json:"target_skills,omitempty"`
		UserProfile          *ProfileSummary               `json:"user_profile,omitempty"`
		Filters              *TrendingQuery                `json:"filters,omitempty"`
		Recommendations      []domain.CourseRecommendation `json:"recommendations"`
		TotalRecommendations int                           `json:"total_recommendations"`
	}

	ProfileSummary struct {
		UserID               string   `json:"user_id"`
		CareerGoals          []string `json:"career_goals"`
		DifficultyPreference string   `json:"difficulty_preference"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
		timeout:          10 * time.Second,
	}
}

func observe(queryType string, start time.Time) {
	metrics.RecommendRequests.WithLabelValues(queryType).Inc()
	metrics.RecommendLatency.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}

// POST /api/v1/courses/skills
func (h *RecommendHandler) CoursesBySkills(c echo.Context) error {
	defer observe("skills", time.Now())

	var req SkillBasedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.CoursesBySkills(ctx, req.Skills, req.Limit)
	if err != nil {
		logger.Error("Failed to match courses to skills", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendationsResponse{
		TargetSkills:         req.Skills,
		Recommendations:      roundRecommendations(recs),
		TotalRecommendations: len(recs),
	}))
}

// POST /api/v1/courses/personalized
func (h *RecommendHandler) PersonalizedCourses(c echo.Context) error {
	defer observe("personalized", time.Now())

	var req PersonalizedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile := domain.UserProfile{
		UserID:               req.UserID,
		PreferredSkills:      req.PreferredSkills,
		DifficultyPreference: req.DifficultyPreference,
		TimeAvailability:     req.TimeAvailability,
		BudgetPreference:     req.BudgetPreference,
		LearningStyle:        req.LearningStyle,
		CareerGoals:          req.CareerGoals,
	}

	recs, err := h.recommendService.PersonalizedCourses(ctx, profile, req.Limit)
	if err != nil {
		logger.Error("Failed to personalize recommendations", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendationsResponse{
		UserProfile: &ProfileSummary{
			UserID:               req.UserID,
			CareerGoals:          req.CareerGoals,
			DifficultyPreference: req.DifficultyPreference,
		},
		Recommendations:      roundRecommendations(recs),
		TotalRecommendations: len(recs),
	}))
}

// GET /api/v1/courses/trending?min_rating=4.0&limit=20
func (h *RecommendHandler) TrendingCourses(c echo.Context) error {
	defer observe("trending", time.Now())

	var q TrendingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.TrendingCourses(ctx, q.MinRating, q.Limit)
	if err != nil {
		logger.Error("Failed to fetch trending courses", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendationsResponse{
		Filters:              &q,
		Recommendations:      roundRecommendations(recs),
		TotalRecommendations: len(recs),
	}))
}

// GET /api/v1/courses/similar/:course_id?limit=10
func (h *RecommendHandler) SimilarCourses(c echo.Context) error {
	defer observe("similar", time.Now())

	limit := 0
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recommendService.SimilarCourses(ctx, c.Param("course_id"), limit)
	if err != nil {
		logger.Error("Failed to find similar courses", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(RecommendationsResponse{
		Recommendations:      roundRecommendations(recs),
		TotalRecommendations: len(recs),
	}))
}

// POST /api/v1/courses/feedback
func (h *RecommendHandler) Feedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	event := domain.InteractionEvent{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		EventType: req.EventType,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
		Context:   datatypes.JSONMap(req.Context),
	}
	if traceID := recommender.TraceIDFromContext(ctx); traceID != "" {
		if event.Context == nil {
			event.Context = datatypes.JSONMap{}
		}
		event.Context["trace_id"] = traceID
	}

	if err := h.recommendService.LogFeedback(ctx, event); err != nil {
		logger.Error("Failed to record feedback", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}
