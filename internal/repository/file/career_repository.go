package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
)

// CareerRepository loads the career Q&A dataset from a CSV file with a
// role,question,answer header.
type CareerRepository struct {
	path string
}

func NewCareerRepository(path string) *CareerRepository {
	return &CareerRepository{path: path}
}

func (r *CareerRepository) LoadCareers(ctx context.Context) ([]domain.CareerQA, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open career dataset %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read career dataset header: %w", err)
	}
	cols, err := columnIndex(header, "role", "question", "answer")
	if err != nil {
		return nil, fmt.Errorf("career dataset %s: %w", r.path, err)
	}

	rows := make([]domain.CareerQA, 0)
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
		row := domain.CareerQA{
			Role:     field(record, cols["role"]),
			Question: field(record, cols["question"]),
			Answer:   field(record, cols["answer"]),
		}
		if row.Role == "" || row.Answer == "" {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	if skipped > 0 {
		logger.Warn("skipped malformed career rows", "path", r.path, "skipped", skipped)
	}

	return rows, nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	out := make(map[string]int, len(names))
	for _, name := range names {
		idx, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		out[name] = idx
	}
	return out, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
