package postgres

import (
	"context"
	"fmt"

	"careerPlatform/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

func (r *InteractionRepository) LoadInteractions(ctx context.Context) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).Order("id asc").Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}

	return interactions, nil
}

// SaveEvent appends one feedback event. Rating rides inside the jsonb
// context so the event table keeps a single shape for all event types.
func (r *InteractionRepository) SaveEvent(ctx context.Context, event domain.InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if event.Context == nil {
		event.Context = datatypes.JSONMap{}
	}
	if event.EventType == "rate" {
		event.Context["rating"] = event.Rating
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save interaction event: %w", err)
	}

	return nil
}
