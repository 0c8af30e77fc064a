package domain

import "strings"

// CREATE TABLE public.career_qa (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     role        TEXT NOT NULL,
//     question    TEXT NOT NULL,
//     answer      TEXT NOT NULL
// );

// CareerQA is one question/answer row of the career dataset. A career role
// usually has many rows; together they form the career's text corpus.
type CareerQA struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Role     string `gorm:"column:role;not null" json:"role"`
	Question string `gorm:"column:question;type:text;not null" json:"question"`
	Answer   string `gorm:"column:answer;type:text;not null" json:"answer"`
}

func (CareerQA) TableName() string {
	return "career_qa"
}

// Career is the listing view of a role.
type Career struct {
	CareerID   string `json:"career_id"`
	CareerName string `json:"career_name"`
	Category   string `json:"category"`
}

// CareerMatch is one scored career from the assessment matcher.
type CareerMatch struct {
	CareerID       string   `json:"career_id"`
	CareerName     string   `json:"career_name"`
	MatchScore     float64  `json:"match_score"`
	MatchingSkills []string `json:"matching_skills"`
}

// CareerIDFor converts a role name to its stable identifier.
func CareerIDFor(role string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(role)), " ", "_")
}
