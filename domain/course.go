package domain

// CREATE TABLE public.courses (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     course_id       TEXT UNIQUE NOT NULL,
//     title           TEXT NOT NULL,
//     organization    TEXT,
//     rating          NUMERIC,
//     review_count    BIGINT,
//     difficulty      TEXT,
//     course_type     TEXT,
//     duration        TEXT,
//     skills          JSONB,
//     url             TEXT,
//     is_free         BOOLEAN
// );

type Course struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"-"`
	CourseID     string   `gorm:"column:course_id;uniqueIndex;not null" json:"course_id"`
	Title        string   `gorm:"column:title;type:text;not null" json:"title"`
	Organization string   `gorm:"column:organization;type:text" json:"organization"`
	Rating       float64  `gorm:"column:rating;type:numeric" json:"rating"`
	ReviewCount  int      `gorm:"column:review_count" json:"review_count"`
	Difficulty   string   `gorm:"column:difficulty;type:text" json:"difficulty"`
	CourseType   string   `gorm:"column:course_type;type:text" json:"course_type"`
	Duration     string   `gorm:"column:duration;type:text" json:"duration"`
	Skills       []string `gorm:"column:skills;serializer:json" json:"skills"`
	URL          string   `gorm:"column:url;type:text" json:"url"`
	IsFree       bool     `gorm:"column:is_free;default:false" json:"is_free"`
}

func (Course) TableName() string {
	return "courses"
}

// Difficulty levels as stored in the catalog.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)
