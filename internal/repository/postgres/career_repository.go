package postgres

import (
	"context"
	"fmt"

	"careerPlatform/domain"

	"gorm.io/gorm"
)

type CareerRepository struct {
	DB *gorm.DB
}

func NewCareerRepository(db *gorm.DB) *CareerRepository {
	return &CareerRepository{
		DB: db,
	}
}

func (r *CareerRepository) LoadCareers(ctx context.Context) ([]domain.CareerQA, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CareerQA
	err := r.DB.WithContext(ctx).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load career qa rows: %w", err)
	}

	return rows, nil
}
