package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.course_interactions (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id         TEXT NOT NULL,
//     course_id       TEXT NOT NULL,
//     rating          NUMERIC NOT NULL
// );

// Interaction is one user-course rating from the (synthetic or real)
// interaction matrix. Duplicate (user, course) pairs are averaged by the
// corpus loader before use.
type Interaction struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID   string  `gorm:"column:user_id;not null" json:"user_id"`
	CourseID string  `gorm:"column:course_id;not null" json:"course_id"`
	Rating   float64 `gorm:"column:rating;type:numeric;not null" json:"rating"`
}

func (Interaction) TableName() string {
	return "course_interactions"
}

// InteractionEvent is the feedback write path. Events are appended to the
// event log only; the in-memory interaction matrix stays read-only for the
// process lifetime.
type InteractionEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"`
	CourseID  string    `gorm:"column:course_id;not null" json:"course_id"`
	EventType string    `gorm:"column:event_type;not null" json:"event_type"`
	Rating    float64   `gorm:"-" json:"rating"` // only meaningful for event_type=rate
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Context datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (InteractionEvent) TableName() string {
	return "course_interaction_events"
}
