package assessment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"careerPlatform/business/career"
	"careerPlatform/business/recommender"
	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
)

const (
	courseRecommendationCount = 8
	alternativeCount          = 3
)

// ErrNoQuestions is fatal: the question config loaded empty. Startup-only.
var ErrNoQuestions = errors.New("no assessment questions")

// IncompleteError reports a submission missing required answers. It carries
// the validation details so the handler can return them to the client.
type IncompleteError struct {
	Validation domain.AssessmentValidation
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("assessment incomplete: %d of %d required questions answered",
		e.Validation.RequiredAnswered, e.Validation.TotalRequired)
}

// QuestionSource loads the assessment question config.
type QuestionSource interface {
	LoadQuestions(ctx context.Context) ([]domain.AssessmentQuestion, error)
}

// Service validates assessment submissions and turns them into career and
// course recommendations.
type Service struct {
	questions []domain.AssessmentQuestion
	careers   *career.Service
	courses   *recommender.Service
}

// NewService loads the question set once. Required questions are listed
// first; within each group the config order is kept so responses stay
// reproducible.
func NewService(ctx context.Context, source QuestionSource, careers *career.Service, courses *recommender.Service) (*Service, error) {
	loaded, err := source.LoadQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assessment questions: %w", err)
	}
	if len(loaded) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]domain.AssessmentQuestion, 0, len(loaded))
	for _, q := range loaded {
		if q.IsRequired {
			questions = append(questions, q)
		}
	}
	required := len(questions)
	for _, q := range loaded {
		if !q.IsRequired {
			questions = append(questions, q)
		}
	}

	logger.Info("assessment questions loaded", "total", len(questions), "required", required)
	return &Service{questions: questions, careers: careers, courses: courses}, nil
}

// Questions returns the full question set for the client to render.
func (s *Service) Questions(ctx context.Context) ([]domain.AssessmentQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.questions, nil
}

// Validate checks a submission against the required question set.
func (s *Service) Validate(answers []domain.AssessmentAnswer) domain.AssessmentValidation {
	answered := make(map[int]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}

	v := domain.AssessmentValidation{
		TotalAnswered:   len(answers),
		MissingRequired: []int{},
	}
	for _, q := range s.questions {
		if !q.IsRequired {
			continue
		}
		v.TotalRequired++
		if answered[q.QuestionID] {
			v.RequiredAnswered++
		} else {
			v.MissingRequired = append(v.MissingRequired, q.QuestionID)
		}
	}
	v.IsValid = len(v.MissingRequired) == 0
	return v
}

// Process turns a validated submission into the career recommendation, a
// set of courses for that career, and up to three alternatives.
func (s *Service) Process(ctx context.Context, answers []domain.AssessmentAnswer) (domain.AssessmentResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.AssessmentResult{}, fmt.Errorf("context error: %w", err)
	}

	validation := s.Validate(answers)
	if !validation.IsValid {
		return domain.AssessmentResult{}, &IncompleteError{Validation: validation}
	}

	matches, err := s.careers.AssessMatch(ctx, combineAnswers(answers))
	if err != nil {
		return domain.AssessmentResult{}, err
	}
	top := matches[0]

	careerText, err := s.careers.Text(top.CareerID)
	if err != nil {
		return domain.AssessmentResult{}, err
	}
	courses, err := s.courses.CoursesByCareerText(ctx, careerText, courseRecommendationCount)
	if err != nil {
		logger.Error("course lookup for assessment failed", err)
		courses = []domain.CourseRecommendation{}
	}

	completeness := 0.0
	if validation.TotalRequired > 0 {
		completeness = roundPct(float64(validation.RequiredAnswered) / float64(validation.TotalRequired) * 100)
	}

	alternatives := make([]domain.CareerAlternative, 0, alternativeCount)
	for _, m := range matches[1:] {
		if len(alternatives) == alternativeCount {
			break
		}
		alternatives = append(alternatives, domain.CareerAlternative{
			CareerID:        m.CareerID,
			CareerName:      m.CareerName,
			MatchPercentage: roundPct(m.MatchScore * 100),
		})
	}

	keySkills := top.MatchingSkills
	if len(keySkills) > 5 {
		keySkills = keySkills[:5]
	}

	return domain.AssessmentResult{
		Summary: domain.AssessmentSummary{
			QuestionsAnswered: validation.TotalAnswered,
			RequiredAnswered:  validation.RequiredAnswered,
			CompletenessPct:   completeness,
		},
		Recommendation: domain.CareerRecommendation{
			CareerID:        top.CareerID,
			CareerName:      top.CareerName,
			MatchPercentage: roundPct(top.MatchScore * 100),
			Description:     s.careers.Description(top.CareerID),
			KeySkills:       keySkills,
			RelatedQACount:  s.careers.QACount(top.CareerID),
		},
		Courses:         courses,
		ConfidenceScore: top.MatchScore,
		Alternatives:    alternatives,
	}, nil
}

func combineAnswers(answers []domain.AssessmentAnswer) string {
	parts := make([]string, 0, len(answers))
	for _, a := range answers {
		if text := strings.TrimSpace(a.Answer); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
