package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"careerPlatform/business/recommender"
	"careerPlatform/domain"
	"careerPlatform/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CourseHandler struct {
		validate       *validator.Validate
		courseService  CourseQueryService
		careerResolver CareerResolver
		timeout        time.Duration
	}

	CourseQueryService interface {
		CoursesByCareerText(ctx context.Context, text string, limit int) ([]domain.CourseRecommendation, error)
		FilterCourses(ctx context.Context, params recommender.FilterParams) ([]domain.CourseRecommendation, int, error)
		CourseByID(ctx context.Context, courseID string) (domain.Course, error)
	}

	CareerResolver interface {
		CareerByID(ctx context.Context, careerID string) (domain.Career, error)
		Text(careerID string) (string, error)
	}

	CareerCoursesQuery struct {
		Difficulty string `query:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
		Limit      int    `query:"limit"`
		Page       int    `query:"page"`
	}

	FilterQuery struct {
		Skills       string  `query:"skills"`
		Difficulty   string  `query:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
		CourseType   string  `query:"course_type"`
		Organization string  `query:"organization"`
		FreeOnly     bool    `query:"free_only"`
		MinRating    float64 `query:"min_rating"`
		Page         int     `query:"page"`
		PerPage      int     `query:"per_page"`
	}

	CareerCoursesResponse struct {
		CareerInfo CareerInfo                    `json:"career_info"`
		Courses    []domain.CourseRecommendation `json:"courses"`
		Pagination Pagination                    `json:"pagination"`
	}

	FilteredCoursesResponse struct {
		FiltersApplied FilterQuery                   `json:"filters_applied"`
		Courses        []domain.CourseRecommendation `json:"courses"`
		Pagination     Pagination                    `json:"pagination"`
	}
)

func NewCourseHandler(courseService CourseQueryService, careerResolver CareerResolver) *CourseHandler {
	return &CourseHandler{
		validate:       validator.New(),
		courseService:  courseService,
		careerResolver: careerResolver,
		timeout:        10 * time.Second,
	}
}

// careerCoursePool bounds how many ranked courses back the per-career
// pagination window.
const careerCoursePool = 200

// GET /api/v1/courses/career/:career_id?difficulty=beginner&limit=20&page=1
func (h *CourseHandler) GetCoursesByCareer(c echo.Context) error {
	var q CareerCoursesQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	careerID := c.Param("career_id")
	career, err := h.careerResolver.CareerByID(ctx, careerID)
	if err != nil {
		return writeServiceError(c, err)
	}
	text, err := h.careerResolver.Text(careerID)
	if err != nil {
		return writeServiceError(c, err)
	}

	ranked, err := h.courseService.CoursesByCareerText(ctx, text, careerCoursePool)
	if err != nil {
		logger.Error("Failed to rank courses for career", "career_id", careerID, "error", err.Error())
		return writeServiceError(c, err)
	}

	if q.Difficulty != "" {
		filtered := ranked[:0]
		for _, rec := range ranked {
			if strings.EqualFold(rec.Difficulty, q.Difficulty) {
				filtered = append(filtered, rec)
			}
		}
		ranked = filtered
	}

	total := len(ranked)
	start := (q.Page - 1) * q.Limit
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(CareerCoursesResponse{
		CareerInfo: CareerInfo{CareerID: career.CareerID, CareerName: career.CareerName},
		Courses:    roundRecommendations(ranked[start:end]),
		Pagination: paginationFor(total, q.Page, q.Limit),
	}))
}

// GET /api/v1/courses/filter
func (h *CourseHandler) FilterCourses(c echo.Context) error {
	var q FilterQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = 20
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	params := recommender.FilterParams{
		Difficulty:   q.Difficulty,
		CourseType:   q.CourseType,
		Organization: q.Organization,
		FreeOnly:     q.FreeOnly,
		MinRating:    q.MinRating,
		Page:         q.Page,
		PerPage:      q.PerPage,
	}
	if q.Skills != "" {
		for _, skill := range strings.Split(q.Skills, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				params.Skills = append(params.Skills, skill)
			}
		}
	}

	courses, total, err := h.courseService.FilterCourses(ctx, params)
	if err != nil {
		logger.Error("Failed to filter courses", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(FilteredCoursesResponse{
		FiltersApplied: q,
		Courses:        roundRecommendations(courses),
		Pagination:     paginationFor(total, q.Page, q.PerPage),
	}))
}

// GET /api/v1/courses/:course_id
func (h *CourseHandler) GetCourseByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	course, err := h.courseService.CourseByID(ctx, c.Param("course_id"))
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(course))
}
