package domain

// CourseRecommendation is one ranked result returned by the recommender.
// Never persisted; recomputed per request.
type CourseRecommendation struct {
	Course
	RelevanceScore float64  `gorm:"-" json:"relevance_score"`
	MatchReasons   []string `gorm:"-" json:"match_reasons"`
}

// UserProfile is request-scoped input for personalized recommendations.
type UserProfile struct {
	UserID               string   `json:"user_id"`
	PreferredSkills      []string `json:"preferred_skills"`
	DifficultyPreference string   `json:"difficulty_preference"`
	TimeAvailability     string   `json:"time_availability"`
	BudgetPreference     string   `json:"budget_preference"`
	LearningStyle        string   `json:"learning_style"`
	CareerGoals          []string `json:"career_goals"`
}

// DebugRecommendation exposes the per-component scores behind one ranked
// candidate. Admin/debug surface only.
type DebugRecommendation struct {
	CourseID           string   `json:"course_id"`
	Title              string   `json:"title"`
	ContentScore       float64  `json:"content_score"`
	CollaborativeScore *float64 `json:"collaborative_score"` // nil = no signal
	Alpha              float64  `json:"alpha"`
	FinalScore         float64  `json:"final_score"`
}

// EngineStats summarizes the loaded corpus for the admin surface.
type EngineStats struct {
	TotalCourses          int     `json:"total_courses"`
	VocabularySize        int     `json:"vocabulary_size"`
	TotalInteractions     int     `json:"total_interactions"`
	DistinctUsers         int     `json:"distinct_users"`
	RatedCourses          int     `json:"rated_courses"`
	EmptyVectorCourses    int     `json:"empty_vector_courses"`
	CollaborativeCoverage float64 `json:"collaborative_coverage"`
}
