package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"careerPlatform/domain"
)

// questionFile is the assessment question config shape.
type questionFile struct {
	CoreQuestions []domain.AssessmentQuestion `json:"core_questions"`
}

// QuestionRepository loads the assessment question config from a JSON
// file. The file is required; the assessment surface cannot run without
// it.
type QuestionRepository struct {
	path string
}

func NewQuestionRepository(path string) *QuestionRepository {
	return &QuestionRepository{path: path}
}

func (r *QuestionRepository) LoadQuestions(ctx context.Context) ([]domain.AssessmentQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question config %s: %w", r.path, err)
	}

	var config questionFile
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("failed to parse question config %s: %w", r.path, err)
	}

	questions := make([]domain.AssessmentQuestion, 0, len(config.CoreQuestions))
	for _, q := range config.CoreQuestions {
		if q.QuestionText == "" {
			continue
		}
		if q.Weight == 0 {
			q.Weight = 1.0
		}
		questions = append(questions, q)
	}
	return questions, nil
}
