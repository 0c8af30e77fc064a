package domain

// Checkpoint is one step of a career roadmap.
type Checkpoint struct {
	CheckpointID  int      `json:"checkpoint_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SkillsDerived []string `json:"skills_derived"`
	EstimatedTime string   `json:"estimated_time"`
	SkillsSource  string   `json:"skills_source"`
}

type Roadmap struct {
	CareerID          string       `json:"career_id"`
	CareerName        string       `json:"career_name"`
	TotalCheckpoints  int          `json:"total_checkpoints"`
	EstimatedDuration string       `json:"estimated_duration"`
	Checkpoints       []Checkpoint `json:"checkpoints"`
}

// LearningPathStep groups recommended courses of one difficulty level.
type LearningPathStep struct {
	Level   string               `json:"level"`
	Courses []LearningPathCourse `json:"courses"`
}

type LearningPathCourse struct {
	CourseID       string   `json:"course_id"`
	Title          string   `json:"title"`
	Organization   string   `json:"organization"`
	Duration       string   `json:"duration"`
	Skills         []string `json:"skills"`
	Rating         float64  `json:"rating"`
	IsFree         bool     `json:"is_free"`
	RelevanceScore float64  `json:"relevance_score"`
}

type LearningPath struct {
	CareerGoal    string             `json:"career_goal"`
	CurrentLevel  string             `json:"current_level"`
	Path          []LearningPathStep `json:"path"`
	TotalDuration string             `json:"total_duration"`
	TotalCourses  int                `json:"total_courses"`
}
