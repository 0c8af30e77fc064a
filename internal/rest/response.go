package rest

import (
	"context"
	"errors"
	"math"
	"net/http"

	"careerPlatform/business/assessment"
	"careerPlatform/business/career"
	"careerPlatform/business/recommender"
	"careerPlatform/domain"

	jsonres "careerPlatform/pkg/response"

	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

// Pagination is the shared page block for list endpoints.
type Pagination struct {
	TotalCourses int  `json:"total_courses"`
	CurrentPage  int  `json:"current_page"`
	TotalPages   int  `json:"total_pages"`
	HasNext      bool `json:"has_next"`
}

func paginationFor(total, page, perPage int) Pagination {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return Pagination{
		TotalCourses: total,
		CurrentPage:  page,
		TotalPages:   totalPages,
		HasNext:      page*perPage < total,
	}
}

// writeServiceError maps business errors onto the stable error envelope.
func writeServiceError(c echo.Context, err error) error {
	var incomplete *assessment.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		return c.JSON(http.StatusBadRequest, jsonres.Error(
			jsonres.CodeIncompleteAssessment,
			"Assessment incomplete - missing required questions",
			incomplete.Validation,
		))
	case errors.Is(err, career.ErrCareerNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error(
			jsonres.CodeCareerNotFound, err.Error(), nil,
		))
	case errors.Is(err, recommender.ErrCourseNotFound):
		return c.JSON(http.StatusNotFound, jsonres.Error(
			jsonres.CodeCourseNotFound, err.Error(), nil,
		))
	case errors.Is(err, recommender.ErrInvalidQuery):
		return c.JSON(http.StatusBadRequest, jsonres.Error(
			jsonres.CodeInvalidQuery, err.Error(), nil,
		))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return c.JSON(http.StatusServiceUnavailable, jsonres.Error(
			jsonres.CodeServiceUnavailable, "Request timed out", nil,
		))
	default:
		return c.JSON(http.StatusInternalServerError, jsonres.Error(
			jsonres.CodeInternal, "Internal server error", nil,
		))
	}
}

// round3 trims relevance scores to three decimals at the boundary. The
// engine keeps full precision internally.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func roundRecommendations(recs []domain.CourseRecommendation) []domain.CourseRecommendation {
	for i := range recs {
		recs[i].RelevanceScore = round3(recs[i].RelevanceScore)
	}
	return recs
}
