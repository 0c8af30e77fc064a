package domain

// AssessmentQuestion comes from the question config file, loaded once at
// startup.
type AssessmentQuestion struct {
	QuestionID   int      `json:"question_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"` // interests, skills, preferences, experience
	Category     string   `json:"category"`
	Options      []string `json:"options,omitempty"`
	IsRequired   bool     `json:"is_required"`
	Weight       float64  `json:"weight"`
}

type AssessmentAnswer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

// AssessmentValidation reports how complete a submission is against the
// required question set.
type AssessmentValidation struct {
	IsValid          bool  `json:"is_valid"`
	MissingRequired  []int `json:"missing_required_questions"`
	TotalAnswered    int   `json:"total_answered"`
	RequiredAnswered int   `json:"required_answered"`
	TotalRequired    int   `json:"total_required"`
}

type AssessmentSummary struct {
	QuestionsAnswered int     `json:"questions_answered"`
	RequiredAnswered  int     `json:"required_questions_answered"`
	CompletenessPct   float64 `json:"assessment_completeness"`
}

type CareerRecommendation struct {
	CareerID        string   `json:"career_id"`
	CareerName      string   `json:"career_name"`
	MatchPercentage float64  `json:"match_percentage"`
	Description     string   `json:"description"`
	KeySkills       []string `json:"key_skills_mentioned"`
	RelatedQACount  int      `json:"related_qa_count"`
}

type CareerAlternative struct {
	CareerID        string  `json:"career_id"`
	CareerName      string  `json:"career_name"`
	MatchPercentage float64 `json:"match_percentage"`
}

type AssessmentResult struct {
	Summary         AssessmentSummary      `json:"assessment_summary"`
	Recommendation  CareerRecommendation   `json:"career_recommendation"`
	Courses         []CourseRecommendation `json:"course_recommendations"`
	ConfidenceScore float64                `json:"confidence_score"`
	Alternatives    []CareerAlternative    `json:"alternatives"`
}
