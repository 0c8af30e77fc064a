package roadmap

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"careerPlatform/business/career"
	"careerPlatform/business/recommender"
	"careerPlatform/domain"
)

type memoryCache struct {
	stored map[string]domain.Roadmap
	getErr error
	setErr error
	reads  int
	writes int
}

func (c *memoryCache) GetRoadmap(_ context.Context, careerID string) (*domain.Roadmap, error) {
	c.reads++
	if c.getErr != nil {
		return nil, c.getErr
	}
	if r, ok := c.stored[careerID]; ok {
		return &r, nil
	}
	return nil, nil
}

func (c *memoryCache) SetRoadmap(_ context.Context, roadmap domain.Roadmap) error {
	c.writes++
	if c.setErr != nil {
		return c.setErr
	}
	if c.stored == nil {
		c.stored = make(map[string]domain.Roadmap)
	}
	c.stored[roadmap.CareerID] = roadmap
	return nil
}

func fixtureCatalog() []domain.Course {
	courses := []domain.Course{
		{CourseID: "b1", Title: "Python Basics", Difficulty: domain.DifficultyBeginner, Skills: []string{"python basics", "python syntax"}, Rating: 4.5, ReviewCount: 500},
		{CourseID: "b2", Title: "Python for Everybody", Difficulty: domain.DifficultyBeginner, Skills: []string{"python programming", "python scripts"}, Rating: 4.6, ReviewCount: 700},
		{CourseID: "b3", Title: "Intro to Python", Difficulty: domain.DifficultyBeginner, Skills: []string{"python fundamentals"}, Rating: 4.2, ReviewCount: 200},
		{CourseID: "i1", Title: "Intermediate Python", Difficulty: domain.DifficultyIntermediate, Skills: []string{"python patterns", "python testing framework"}, Rating: 4.4, ReviewCount: 300},
		{CourseID: "i2", Title: "Python Data Analysis", Difficulty: domain.DifficultyIntermediate, Skills: []string{"python analysis", "data analysis project"}, Rating: 4.3, ReviewCount: 250},
		{CourseID: "a1", Title: "Advanced Python Systems", Difficulty: domain.DifficultyAdvanced, Skills: []string{"python concurrency", "python internals"}, Rating: 4.7, ReviewCount: 400},
		{CourseID: "a2", Title: "Python Performance", Difficulty: domain.DifficultyAdvanced, Skills: []string{"python profiling", "python optimization"}, Rating: 4.5, ReviewCount: 150},
	}
	return courses
}

func newTestServices(t *testing.T, cache Cache) *Service {
	t.Helper()
	careers, err := career.NewService([]domain.CareerQA{
		{Role: "Python Developer", Question: "Daily work?", Answer: "I write python services, test python code and review analysis projects."},
		{Role: "Data Analyst", Question: "Daily work?", Answer: "I run data analysis with sql and present findings to management."},
	})
	if err != nil {
		t.Fatalf("career.NewService: %v", err)
	}
	courses, err := recommender.NewService(fixtureCatalog(), nil, nil, recommender.DefaultConfig())
	if err != nil {
		t.Fatalf("recommender.NewService: %v", err)
	}
	return NewService(careers, courses, cache)
}

func TestRoadmap_UnknownCareer(t *testing.T) {
	s := newTestServices(t, nil)
	_, err := s.Roadmap(context.Background(), "astronaut")
	if !errors.Is(err, career.ErrCareerNotFound) {
		t.Errorf("err = %v, want ErrCareerNotFound", err)
	}
}

func TestRoadmap_BuildsCheckpoints(t *testing.T) {
	s := newTestServices(t, nil)
	roadmap, err := s.Roadmap(context.Background(), "python_developer")
	if err != nil {
		t.Fatalf("Roadmap: %v", err)
	}

	if roadmap.CareerName != "Python Developer" {
		t.Errorf("CareerName = %q", roadmap.CareerName)
	}
	if roadmap.TotalCheckpoints != len(roadmap.Checkpoints) {
		t.Errorf("TotalCheckpoints = %d with %d checkpoints",
			roadmap.TotalCheckpoints, len(roadmap.Checkpoints))
	}
	if len(roadmap.Checkpoints) == 0 {
		t.Fatal("expected at least one checkpoint")
	}
	for i, cp := range roadmap.Checkpoints {
		if cp.CheckpointID != i+1 {
			t.Errorf("checkpoint %d has id %d", i, cp.CheckpointID)
		}
		if len(cp.SkillsDerived) == 0 {
			t.Errorf("checkpoint %q carries no skills", cp.Title)
		}
	}
	if roadmap.EstimatedDuration == "" {
		t.Error("expected an estimated duration")
	}
}

func TestRoadmap_CacheHitSkipsRebuild(t *testing.T) {
	cached := domain.Roadmap{CareerID: "python_developer", CareerName: "Cached", TotalCheckpoints: 1}
	cache := &memoryCache{stored: map[string]domain.Roadmap{"python_developer": cached}}
	s := newTestServices(t, cache)

	roadmap, err := s.Roadmap(context.Background(), "python_developer")
	if err != nil {
		t.Fatalf("Roadmap: %v", err)
	}
	if !reflect.DeepEqual(roadmap, cached) {
		t.Errorf("roadmap = %+v, want the cached copy", roadmap)
	}
	if cache.writes != 0 {
		t.Error("cache hit still wrote back")
	}
}

func TestRoadmap_CacheFailureDegrades(t *testing.T) {
	cache := &memoryCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	s := newTestServices(t, cache)

	roadmap, err := s.Roadmap(context.Background(), "python_developer")
	if err != nil {
		t.Fatalf("Roadmap with broken cache: %v", err)
	}
	if len(roadmap.Checkpoints) == 0 {
		t.Error("expected a computed roadmap despite cache errors")
	}
	if cache.reads != 1 || cache.writes != 1 {
		t.Errorf("cache reads=%d writes=%d, want one attempt each", cache.reads, cache.writes)
	}
}

func TestRoadmap_WritesToCache(t *testing.T) {
	cache := &memoryCache{}
	s := newTestServices(t, cache)

	first, err := s.Roadmap(context.Background(), "python_developer")
	if err != nil {
		t.Fatalf("Roadmap: %v", err)
	}
	second, err := s.Roadmap(context.Background(), "python_developer")
	if err != nil {
		t.Fatalf("Roadmap: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("cached roadmap differs from the computed one")
	}
	if cache.writes != 1 {
		t.Errorf("cache writes = %d, want 1", cache.writes)
	}
}

func TestLearningPath_LevelProgression(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	beginner, err := s.LearningPath(ctx, "python_developer", "beginner")
	if err != nil {
		t.Fatalf("LearningPath: %v", err)
	}
	if len(beginner.Path) != 1 || beginner.Path[0].Level != domain.DifficultyBeginner {
		t.Errorf("beginner path levels = %v", levelsOf(beginner))
	}

	advanced, err := s.LearningPath(ctx, "python_developer", "Advanced")
	if err != nil {
		t.Fatalf("LearningPath: %v", err)
	}
	wantLevels := []string{domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced}
	if !reflect.DeepEqual(levelsOf(advanced), wantLevels) {
		t.Errorf("advanced path levels = %v, want %v", levelsOf(advanced), wantLevels)
	}
	if advanced.CurrentLevel != "advanced" {
		t.Errorf("CurrentLevel = %q, want lowercased input", advanced.CurrentLevel)
	}

	total := 0
	for _, step := range advanced.Path {
		if len(step.Courses) > coursesPerLevel {
			t.Errorf("level %s has %d courses, want at most %d", step.Level, len(step.Courses), coursesPerLevel)
		}
		total += len(step.Courses)
	}
	if advanced.TotalCourses != total {
		t.Errorf("TotalCourses = %d, want %d", advanced.TotalCourses, total)
	}
	if want := fmt.Sprintf("%d weeks", total*weeksPerCourse); advanced.TotalDuration != want {
		t.Errorf("TotalDuration = %q, want %q", advanced.TotalDuration, want)
	}
}

func TestLearningPath_UnknownLevel(t *testing.T) {
	s := newTestServices(t, nil)
	_, err := s.LearningPath(context.Background(), "python_developer", "guru")
	if !errors.Is(err, recommender.ErrInvalidQuery) {
		t.Errorf("err = %v, want ErrInvalidQuery", err)
	}
}

func TestParseWeeks(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"4-6 weeks", 4},
		{"10 weeks", 10},
		{"weeks", 4},
		{"", 4},
	}
	for _, c := range cases {
		if got := parseWeeks(c.in); got != c.want {
			t.Errorf("parseWeeks(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		weeks int
		want  string
	}{
		{8, "8 weeks"},
		{12, "12 weeks"},
		{16, "4 months"},
		{52, "13 months"},
		{56, "1 year 2 months"},
		{104, "2 years 2 months"},
		{96, "2 years"},
	}
	for _, c := range cases {
		if got := formatDuration(c.weeks); got != c.want {
			t.Errorf("formatDuration(%d) = %q, want %q", c.weeks, got, c.want)
		}
	}
}

func TestFrequentTerms(t *testing.T) {
	got := frequentTerms([]string{
		"python basics", "python syntax", "sql basics", "the python",
	}, 2)
	want := []string{"python", "basics"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("frequentTerms = %v, want %v", got, want)
	}
}

func TestIsPractical(t *testing.T) {
	if !isPractical("Data Analysis Project") {
		t.Error("expected project work to read as practical")
	}
	if isPractical("linear algebra") {
		t.Error("theory term read as practical")
	}
}

func TestBuildSkillCategories(t *testing.T) {
	cats := buildSkillCategories(fixtureCatalog())
	if !cats.foundation["python"] {
		t.Error("python appears in five beginner skills, want it in foundation")
	}
	if !cats.technical["python"] {
		t.Error("python dominates the catalog, want it in technical")
	}
	if !cats.advanced["python"] {
		t.Error("python appears in four advanced skills, want it in advanced")
	}
	if len(cats.tools) != 0 {
		t.Errorf("tools = %v, want empty: no frequent term carries a tool indicator", cats.tools)
	}
}

func TestWithIndicator(t *testing.T) {
	got := withIndicator([]string{"testing framework", "python", "ci platform"}, toolIndicators)
	want := []string{"testing framework", "ci platform"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("withIndicator = %v, want %v", got, want)
	}
}

func levelsOf(p domain.LearningPath) []string {
	levels := make([]string, len(p.Path))
	for i, step := range p.Path {
		levels[i] = step.Level
	}
	return levels
}
