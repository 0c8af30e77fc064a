package rest

import (
	"context"
	"net/http"
	"time"

	"careerPlatform/domain"
	"careerPlatform/pkg/logger"

	jsonres "careerPlatform/pkg/response"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AssessmentHandler struct {
		validate          *validator.Validate
		assessmentService AssessmentService
		timeout           time.Duration
	}

	AssessmentService interface {
		Questions(ctx context.Context) ([]domain.AssessmentQuestion, error)
		Process(ctx context.Context, answers []domain.AssessmentAnswer) (domain.AssessmentResult, error)
	}

	AssessmentRequest struct {
		Answers []domain.AssessmentAnswer `json:"answers" validate:"required"`
	}

	QuestionListResponse struct {
		Questions      []domain.AssessmentQuestion `json:"questions"`
		TotalQuestions int                         `json:"total_questions"`
	}
)

const minimumAnswers = 5

func NewAssessmentHandler(svc AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		validate:          validator.New(),
		assessmentService: svc,
		timeout:           10 * time.Second,
	}
}

// GET /api/v1/assessment/questions
func (h *AssessmentHandler) GetQuestions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	questions, err := h.assessmentService.Questions(ctx)
	if err != nil {
		logger.Error("Failed to list assessment questions", err)
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(QuestionListResponse{
		Questions:      questions,
		TotalQuestions: len(questions),
	}))
}

// POST /api/v1/assess-career
func (h *AssessmentHandler) AssessCareer(c echo.Context) error {
	var req AssessmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if len(req.Answers) < minimumAnswers {
		return c.JSON(http.StatusBadRequest, jsonres.Error(
			jsonres.CodeIncompleteAssessment,
			"Assessment requires at least 5 answered questions",
			map[string]int{
				"questions_answered": len(req.Answers),
				"questions_required": minimumAnswers,
			},
		))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.assessmentService.Process(ctx, req.Answers)
	if err != nil {
		logger.Error("Failed to process assessment", err)
		return writeServiceError(c, err)
	}

	result.Courses = roundRecommendations(result.Courses)
	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
