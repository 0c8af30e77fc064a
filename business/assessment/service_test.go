package assessment

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"careerPlatform/business/career"
	"careerPlatform/business/recommender"
	"careerPlatform/domain"
)

type staticQuestions struct {
	questions []domain.AssessmentQuestion
	err       error
}

func (s staticQuestions) LoadQuestions(context.Context) ([]domain.AssessmentQuestion, error) {
	return s.questions, s.err
}

func fixtureQuestions() []domain.AssessmentQuestion {
	return []domain.AssessmentQuestion{
		{QuestionID: 1, QuestionText: "What topics interest you?", QuestionType: "interests", IsRequired: true, Weight: 1.5},
		{QuestionID: 2, QuestionText: "Which tools have you used?", QuestionType: "skills", IsRequired: false, Weight: 1.0},
		{QuestionID: 3, QuestionText: "What work style suits you?", QuestionType: "preferences", IsRequired: true, Weight: 1.0},
	}
}

func newTestEngines(t *testing.T) (*career.Service, *recommender.Service) {
	t.Helper()
	careers, err := career.NewService([]domain.CareerQA{
		{Role: "Data Scientist", Question: "Daily work?", Answer: "I build machine learning models in python with statistics."},
		{Role: "Data Engineer", Question: "Daily work?", Answer: "I maintain sql data pipelines and warehouses."},
		{Role: "UX Designer", Question: "Daily work?", Answer: "I sketch wireframes and run usability interviews."},
	})
	if err != nil {
		t.Fatalf("career.NewService: %v", err)
	}
	courses, err := recommender.NewService([]domain.Course{
		{CourseID: "c1", Title: "Python Machine Learning", Skills: []string{"python"}, Rating: 4.7, ReviewCount: 900},
		{CourseID: "c2", Title: "SQL Data Pipelines", Skills: []string{"sql"}, Rating: 4.4, ReviewCount: 400},
		{CourseID: "c3", Title: "Usability Interview Practice", Skills: []string{"design"}, Rating: 4.1, ReviewCount: 120},
	}, nil, nil, recommender.DefaultConfig())
	if err != nil {
		t.Fatalf("recommender.NewService: %v", err)
	}
	return careers, courses
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	careers, courses := newTestEngines(t)
	s, err := NewService(context.Background(), staticQuestions{questions: fixtureQuestions()}, careers, courses)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return s
}

func TestNewService_RequiredFirst(t *testing.T) {
	s := newTestService(t)
	qs, err := s.Questions(context.Background())
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.QuestionID
	}
	if !reflect.DeepEqual(ids, []int{1, 3, 2}) {
		t.Errorf("question order = %v, want required first in config order", ids)
	}
}

func TestNewService_EmptyConfig(t *testing.T) {
	careers, courses := newTestEngines(t)
	_, err := NewService(context.Background(), staticQuestions{}, careers, courses)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestValidate(t *testing.T) {
	s := newTestService(t)

	v := s.Validate([]domain.AssessmentAnswer{{QuestionID: 1, Answer: "data"}})
	if v.IsValid {
		t.Error("submission missing a required question validated as complete")
	}
	if !reflect.DeepEqual(v.MissingRequired, []int{3}) {
		t.Errorf("MissingRequired = %v, want [3]", v.MissingRequired)
	}
	if v.TotalRequired != 2 || v.RequiredAnswered != 1 || v.TotalAnswered != 1 {
		t.Errorf("counts = %+v", v)
	}

	v = s.Validate(nil)
	if v.MissingRequired == nil {
		t.Error("MissingRequired must be an empty slice, not nil")
	}

	v = s.Validate([]domain.AssessmentAnswer{
		{QuestionID: 1, Answer: "a"},
		{QuestionID: 3, Answer: "b"},
	})
	if !v.IsValid {
		t.Errorf("complete submission rejected: %+v", v)
	}
}

func TestProcess_Incomplete(t *testing.T) {
	s := newTestService(t)
	_, err := s.Process(context.Background(), []domain.AssessmentAnswer{{QuestionID: 1, Answer: "data"}})

	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("err = %v, want *IncompleteError", err)
	}
	if incomplete.Validation.IsValid {
		t.Error("incomplete error carries a valid validation")
	}
	if incomplete.Validation.RequiredAnswered != 1 || incomplete.Validation.TotalRequired != 2 {
		t.Errorf("validation = %+v", incomplete.Validation)
	}
}

func TestProcess_FullFlow(t *testing.T) {
	s := newTestService(t)
	answers := []domain.AssessmentAnswer{
		{QuestionID: 1, Answer: "I enjoy python, machine learning and statistics"},
		{QuestionID: 3, Answer: "I like working with data and models"},
	}

	result, err := s.Process(context.Background(), answers)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if result.Recommendation.CareerID != "data_scientist" {
		t.Errorf("recommended career = %s, want data_scientist", result.Recommendation.CareerID)
	}
	if result.Recommendation.Description == "" {
		t.Error("expected a career description")
	}
	if n := len(result.Recommendation.KeySkills); n == 0 || n > 5 {
		t.Errorf("key skills = %v, want 1 to 5 entries", result.Recommendation.KeySkills)
	}

	if result.Summary.QuestionsAnswered != 2 || result.Summary.CompletenessPct != 100 {
		t.Errorf("summary = %+v", result.Summary)
	}

	if len(result.Alternatives) != 2 {
		t.Errorf("got %d alternatives, want the 2 remaining careers", len(result.Alternatives))
	}
	for _, alt := range result.Alternatives {
		if alt.CareerID == result.Recommendation.CareerID {
			t.Error("the recommended career appeared among its own alternatives")
		}
	}

	if len(result.Courses) == 0 {
		t.Error("expected course recommendations for the matched career")
	}
	if result.ConfidenceScore <= 0 || result.ConfidenceScore > 1 {
		t.Errorf("confidence = %v, want within (0,1]", result.ConfidenceScore)
	}

	again, err := s.Process(context.Background(), answers)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !reflect.DeepEqual(result, again) {
		t.Error("identical submissions produced different results")
	}
}

func TestRoundPct(t *testing.T) {
	if got := roundPct(66.666); got != 66.7 {
		t.Errorf("roundPct = %v, want 66.7", got)
	}
	if got := roundPct(100); got != 100 {
		t.Errorf("roundPct = %v, want 100", got)
	}
}
