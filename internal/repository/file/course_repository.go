package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
)

// catalogFile is the on-disk course catalog shape.
type catalogFile struct {
	Metadata struct {
		Source      string `json:"source"`
		GeneratedAt string `json:"generated_at"`
	} `json:"metadata"`
	Courses []domain.Course `json:"courses"`
}

// CourseRepository loads the course catalog from a JSON file.
type CourseRepository struct {
	path string
}

func NewCourseRepository(path string) *CourseRepository {
	return &CourseRepository{path: path}
}

func (r *CourseRepository) LoadCourses(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course catalog %s: %w", r.path, err)
	}

	var catalog catalogFile
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse course catalog %s: %w", r.path, err)
	}

	courses := make([]domain.Course, 0, len(catalog.Courses))
	skipped := 0
	for _, c := range catalog.Courses {
		if c.CourseID == "" || c.Title == "" {
			skipped++
			continue
		}
		courses = append(courses, c)
	}
	if skipped > 0 {
		logger.Warn("skipped malformed catalog rows", "path", r.path, "skipped", skipped)
	}

	return courses, nil
}
