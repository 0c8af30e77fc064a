package postgres

import (
	"context"
	"fmt"

	"careerPlatform/domain"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{
		DB: db,
	}
}

func (r *CourseRepository) LoadCourses(ctx context.Context) ([]domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var courses []domain.Course
	err := r.DB.WithContext(ctx).Order("course_id asc").Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}

	return courses, nil
}
