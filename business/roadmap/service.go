package roadmap

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"careerPlatform/business/career"
	"careerPlatform/business/recommender"
	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
)

const (
	relatedCourseCount = 30
	prioritizedSkills  = 25
	coursesPerLevel    = 5
	weeksPerCourse     = 2
)

// Cache stores generated roadmaps. Roadmaps are deterministic for a given
// corpus, so a cache hit and a recomputation are interchangeable.
type Cache interface {
	GetRoadmap(ctx context.Context, careerID string) (*domain.Roadmap, error)
	SetRoadmap(ctx context.Context, roadmap domain.Roadmap) error
}

// Service generates career roadmaps and structured learning paths. A nil
// cache disables caching.
type Service struct {
	careers    *career.Service
	courses    *recommender.Service
	cache      Cache
	categories skillCategories
}

func NewService(careers *career.Service, courses *recommender.Service, cache Cache) *Service {
	return &Service{
		careers:    careers,
		courses:    courses,
		cache:      cache,
		categories: buildSkillCategories(courses.Courses()),
	}
}

// Roadmap builds the checkpoint plan for one career. Skills come from the
// career's Q&A text and from the skill lists of its most relevant courses.
func (s *Service) Roadmap(ctx context.Context, careerID string) (domain.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return domain.Roadmap{}, fmt.Errorf("context error: %w", err)
	}

	if s.cache != nil {
		if cached, err := s.cache.GetRoadmap(ctx, careerID); err != nil {
			logger.Warn("roadmap cache read failed", "career_id", careerID, "error", err.Error())
		} else if cached != nil {
			return *cached, nil
		}
	}

	c, err := s.careers.CareerByID(ctx, careerID)
	if err != nil {
		return domain.Roadmap{}, err
	}

	skills := s.prioritizedSkills(ctx, careerID)
	checkpoints := s.buildCheckpoints(skills, c.CareerName)

	totalWeeks := 0
	for _, cp := range checkpoints {
		totalWeeks += parseWeeks(cp.EstimatedTime)
	}

	roadmap := domain.Roadmap{
		CareerID:          careerID,
		CareerName:        c.CareerName,
		TotalCheckpoints:  len(checkpoints),
		EstimatedDuration: formatDuration(totalWeeks),
		Checkpoints:       checkpoints,
	}

	if s.cache != nil {
		if err := s.cache.SetRoadmap(ctx, roadmap); err != nil {
			logger.Warn("roadmap cache write failed", "career_id", careerID, "error", err.Error())
		}
	}
	return roadmap, nil
}

// prioritizedSkills merges Q&A-derived and course-derived skills by
// combined frequency.
func (s *Service) prioritizedSkills(ctx context.Context, careerID string) []string {
	qaSkills := s.careers.KeySkills(careerID, 20)
	courseSkills := s.skillsFromCourses(ctx, careerID)

	freq := make(map[string]int)
	order := make([]string, 0, len(qaSkills)+len(courseSkills))
	for _, skill := range append(qaSkills, courseSkills...) {
		key := strings.ToLower(skill)
		if freq[key] == 0 {
			order = append(order, key)
		}
		freq[key]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	return capped(order, prioritizedSkills)
}

func (s *Service) skillsFromCourses(ctx context.Context, careerID string) []string {
	text, err := s.careers.Text(careerID)
	if err != nil {
		return nil
	}
	related, err := s.courses.CoursesByCareerText(ctx, text, relatedCourseCount)
	if err != nil {
		logger.Warn("related course lookup for roadmap failed", "career_id", careerID, "error", err.Error())
		return nil
	}

	words := make([]string, 0)
	for _, rec := range related {
		for _, skill := range rec.Skills {
			words = append(words, skill)
		}
	}
	return capped(frequentTerms(words, 1), 15)
}

type checkpointTemplate struct {
	title       string
	description string
	duration    string
	source      string
	maxSkills   int
	match       func(*Service, string) bool
}

var checkpointTemplates = []checkpointTemplate{
	{
		title:       "Foundation Skills",
		description: "Build fundamental knowledge required for %s",
		duration:    "4-6 weeks",
		source:      "career_qa + courses",
		maxSkills:   5,
		match:       func(s *Service, skill string) bool { return s.categories.foundation[skill] },
	},
	{
		title:       "Core Technical Skills",
		description: "Master essential technical skills for %s",
		duration:    "6-8 weeks",
		source:      "career_qa + courses",
		maxSkills:   6,
		match:       func(s *Service, skill string) bool { return s.categories.technical[skill] },
	},
	{
		title:       "Tools and Technologies",
		description: "Learn industry-standard tools for %s",
		duration:    "4-6 weeks",
		source:      "courses",
		maxSkills:   5,
		match:       func(s *Service, skill string) bool { return s.categories.tools[skill] },
	},
	{
		title:       "Practical Application",
		description: "Apply skills through hands-on projects and real-world scenarios",
		duration:    "6-8 weeks",
		source:      "career_qa + courses",
		maxSkills:   4,
		match:       func(_ *Service, skill string) bool { return isPractical(skill) },
	},
	{
		title:       "Advanced Specialization",
		description: "Develop advanced expertise in %s",
		duration:    "8-10 weeks",
		source:      "courses",
		maxSkills:   4,
		match:       func(s *Service, skill string) bool { return s.categories.advanced[skill] },
	},
	{
		title:       "Professional Skills",
		description: "Develop communication and professional skills for career success",
		duration:    "3-4 weeks",
		source:      "career_qa",
		maxSkills:   4,
		match:       func(s *Service, skill string) bool { return s.categories.soft[skill] },
	},
}

// buildCheckpoints walks the template sequence and emits a checkpoint for
// every stage at least one prioritized skill falls into.
func (s *Service) buildCheckpoints(skills []string, careerName string) []domain.Checkpoint {
	checkpoints := make([]domain.Checkpoint, 0, len(checkpointTemplates))
	for _, tpl := range checkpointTemplates {
		matched := make([]string, 0, tpl.maxSkills)
		for _, skill := range skills {
			if len(matched) == tpl.maxSkills {
				break
			}
			if tpl.match(s, skill) {
				matched = append(matched, skill)
			}
		}
		if len(matched) == 0 {
			continue
		}

		description := tpl.description
		if strings.Contains(description, "%s") {
			description = fmt.Sprintf(description, careerName)
		}
		checkpoints = append(checkpoints, domain.Checkpoint{
			CheckpointID:  len(checkpoints) + 1,
			Title:         tpl.title,
			Description:   description,
			SkillsDerived: matched,
			EstimatedTime: tpl.duration,
			SkillsSource:  tpl.source,
		})
	}
	return checkpoints
}

// LearningPath groups the career's most relevant courses into difficulty
// stages up to the requested level.
func (s *Service) LearningPath(ctx context.Context, careerID, skillLevel string) (domain.LearningPath, error) {
	if err := ctx.Err(); err != nil {
		return domain.LearningPath{}, fmt.Errorf("context error: %w", err)
	}

	c, err := s.careers.CareerByID(ctx, careerID)
	if err != nil {
		return domain.LearningPath{}, err
	}

	targetLevels, ok := levelProgression[strings.ToLower(skillLevel)]
	if !ok {
		return domain.LearningPath{}, fmt.Errorf("unknown skill level %q: %w", skillLevel, recommender.ErrInvalidQuery)
	}

	text, err := s.careers.Text(careerID)
	if err != nil {
		return domain.LearningPath{}, err
	}
	related, err := s.courses.CoursesByCareerText(ctx, text, 50)
	if err != nil {
		return domain.LearningPath{}, err
	}

	grouped := make(map[string][]domain.CourseRecommendation)
	for _, rec := range related {
		grouped[rec.Difficulty] = append(grouped[rec.Difficulty], rec)
	}

	path := make([]domain.LearningPathStep, 0, len(targetLevels))
	totalCourses := 0
	for _, level := range targetLevels {
		levelCourses := grouped[level]
		if len(levelCourses) == 0 {
			continue
		}
		if len(levelCourses) > coursesPerLevel {
			levelCourses = levelCourses[:coursesPerLevel]
		}

		step := domain.LearningPathStep{Level: level}
		for _, rec := range levelCourses {
			step.Courses = append(step.Courses, domain.LearningPathCourse{
				CourseID:       rec.CourseID,
				Title:          rec.Title,
				Organization:   rec.Organization,
				Duration:       rec.Duration,
				Skills:         capped(rec.Skills, 5),
				Rating:         rec.Rating,
				IsFree:         rec.IsFree,
				RelevanceScore: rec.RelevanceScore,
			})
		}
		path = append(path, step)
		totalCourses += len(levelCourses)
	}

	return domain.LearningPath{
		CareerGoal:    c.CareerName,
		CurrentLevel:  strings.ToLower(skillLevel),
		Path:          path,
		TotalDuration: fmt.Sprintf("%d weeks", totalCourses*weeksPerCourse),
		TotalCourses:  totalCourses,
	}, nil
}

var levelProgression = map[string][]string{
	"beginner":     {domain.DifficultyBeginner},
	"intermediate": {domain.DifficultyBeginner, domain.DifficultyIntermediate},
	"advanced":     {domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced},
}

// parseWeeks takes the first number of an estimate like "4-6 weeks".
func parseWeeks(estimate string) int {
	field := ""
	for _, r := range estimate {
		if r >= '0' && r <= '9' {
			field += string(r)
		} else if field != "" {
			break
		}
	}
	if field == "" {
		return 4
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 4
	}
	return n
}

// formatDuration renders a week count the way learners read it: weeks up
// to three months, then months, then years.
func formatDuration(totalWeeks int) string {
	if totalWeeks <= 12 {
		return fmt.Sprintf("%d weeks", totalWeeks)
	}
	months := totalWeeks / 4
	if totalWeeks <= 52 {
		return fmt.Sprintf("%d months", months)
	}
	years := months / 12
	remaining := months % 12
	out := fmt.Sprintf("%d year", years)
	if years > 1 {
		out += "s"
	}
	if remaining > 0 {
		out += fmt.Sprintf(" %d month", remaining)
		if remaining > 1 {
			out += "s"
		}
	}
	return out
}
