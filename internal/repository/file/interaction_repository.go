package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
)

// InteractionRepository loads the user-course rating matrix from a CSV file
// with a user_id,course_id,rating header. A missing file is an empty
// matrix, not an error; the engine then runs content-only.
type InteractionRepository struct {
	path string
}

func NewInteractionRepository(path string) *InteractionRepository {
	return &InteractionRepository{path: path}
}

func (r *InteractionRepository) LoadInteractions(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if r.path == "" {
		return nil, nil
	}

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("interaction matrix not found, running content-only", "path", r.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open interaction matrix %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read interaction matrix header: %w", err)
	}
	cols, err := columnIndex(header, "user_id", "course_id", "rating")
	if err != nil {
		return nil, fmt.Errorf("interaction matrix %s: %w", r.path, err)
	}

	interactions := make([]domain.Interaction, 0)
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		rating, err := strconv.ParseFloat(field(record, cols["rating"]), 64)
		row := domain.Interaction{
			UserID:   field(record, cols["user_id"]),
			CourseID: field(record, cols["course_id"]),
			Rating:   rating,
		}
		if err != nil || row.UserID == "" || row.CourseID == "" || rating < 0 || rating > 5 {
			skipped++
			continue
		}
		interactions = append(interactions, row)
	}
	if skipped > 0 {
		logger.Warn("skipped malformed interaction rows", "path", r.path, "skipped", skipped)
	}

	return interactions, nil
}
