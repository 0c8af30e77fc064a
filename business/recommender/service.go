package recommender

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
	"careerPlatform/pkg/metrics"
	"careerPlatform/pkg/normalizer"
)

// Feedback event types accepted by LogFeedback.
const (
	EventView     = "view"
	EventEnroll   = "enroll"
	EventComplete = "complete"
	EventRate     = "rate"
)

// ---- Repository interfaces ----

// EventRepository is the feedback write path. The engine only appends;
// recorded events never mutate the in-memory interaction matrix.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.InteractionEvent) error
}

// ---- Usecase / Service ----

// Service is the recommendation engine facade. All state is built once at
// construction and read-only afterwards, so every method is safe for
// concurrent use.
type Service struct {
	cfg       Config
	courses   []domain.Course
	courseIDs []string
	byID      map[string]int
	model     *TextModel
	collab    *collabModel
	eventRepo EventRepository

	emptyVectors int
}

// NewService builds the engine from a loaded corpus. Courses with duplicate
// course_ids keep the first occurrence. Returns ErrEmptyVocabulary when the
// catalog yields no usable tokens at all.
func NewService(courses []domain.Course, interactions []domain.Interaction, eventRepo EventRepository, cfg Config) (*Service, error) {
	if cfg.LimitDefault <= 0 {
		cfg = DefaultConfig()
	}

	kept := make([]domain.Course, 0, len(courses))
	byID := make(map[string]int, len(courses))
	for _, c := range courses {
		if c.CourseID == "" || c.Title == "" {
			continue
		}
		if _, dup := byID[c.CourseID]; dup {
			logger.Warn("duplicate course_id in catalog, keeping first", "course_id", c.CourseID)
			continue
		}
		byID[c.CourseID] = len(kept)
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("empty course catalog: %w", ErrEmptyVocabulary)
	}

	docs := make([][]string, len(kept))
	for i, c := range kept {
		docs[i] = normalizer.Normalize(c.Title + " " + strings.Join(c.Skills, " "))
	}

	model, err := NewTextModel(docs)
	if err != nil {
		return nil, err
	}

	s := &Service{
		cfg:       cfg,
		courses:   kept,
		courseIDs: make([]string, len(kept)),
		byID:      byID,
		model:     model,
		collab:    newCollabModel(interactions, cfg.MinOverlap),
		eventRepo: eventRepo,
	}
	for i, c := range kept {
		s.courseIDs[i] = c.CourseID
		if len(model.Doc(i)) == 0 {
			s.emptyVectors++
		}
	}

	logger.Info("recommendation engine ready",
		"courses", len(kept),
		"vocabulary", model.VocabularySize(),
		"interactions", s.collab.interactionCount(),
		"empty_vectors", s.emptyVectors)
	return s, nil
}

// ---- ranking plumbing ----

type scored struct {
	idx    int
	score  float64
	collab *float64
}

// sortScored orders candidates by score desc, then rating desc, review
// count desc, course_id asc. Every query path uses this comparator so equal
// inputs always produce identical output.
func (s *Service) sortScored(recs []scored) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.score != b.score {
			return a.score > b.score
		}
		ca, cb := s.courses[a.idx], s.courses[b.idx]
		if ca.Rating != cb.Rating {
			return ca.Rating > cb.Rating
		}
		if ca.ReviewCount != cb.ReviewCount {
			return ca.ReviewCount > cb.ReviewCount
		}
		return ca.CourseID < cb.CourseID
	})
}

func (s *Service) toRecommendations(recs []scored, limit int, reasons func(scored) []string) []domain.CourseRecommendation {
	if limit > len(recs) {
		limit = len(recs)
	}
	out := make([]domain.CourseRecommendation, 0, limit)
	for _, r := range recs[:limit] {
		rec := domain.CourseRecommendation{
			Course:         s.courses[r.idx],
			RelevanceScore: r.score,
		}
		if reasons != nil {
			rec.MatchReasons = reasons(r)
		}
		out = append(out, rec)
	}
	return out
}

// contentScores ranks every course against a query vector. Zero scores are
// kept so limit semantics stay simple; callers that want a floor filter
// afterwards.
func (s *Service) contentScores(query sparseVec) map[string]float64 {
	scores := make(map[string]float64, len(s.courses))
	for i, id := range s.courseIDs {
		scores[id] = dotSparse(query, s.model.Doc(i))
	}
	return scores
}

func (s *Service) blend(queryType string, content, collab map[string]float64, exclude string) []scored {
	candidates := make([]string, 0, len(s.courseIDs))
	for _, id := range s.courseIDs {
		if id != exclude {
			candidates = append(candidates, id)
		}
	}

	blendedScores, _, coverage := blendScores(content, collab, candidates)
	if coverage == 0 && len(s.collab.userRatings) > 0 {
		metrics.ColdStartFallbacks.Inc()
		logger.Debug("query answered without collaborative signal", "query_type", queryType)
	}

	recs := make([]scored, 0, len(blendedScores))
	for _, b := range blendedScores {
		recs = append(recs, scored{idx: s.byID[b.courseID], score: b.finalScore, collab: b.collabScore})
	}
	s.sortScored(recs)
	return recs
}

// ---- queries ----

// SimilarCourses ranks the catalog against one course by blended text and
// co-rating similarity. The course itself is never in its own results.
func (s *Service) SimilarCourses(ctx context.Context, courseID string, limit int) ([]domain.CourseRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	idx, ok := s.byID[courseID]
	if !ok {
		return nil, fmt.Errorf("course %q: %w", courseID, ErrCourseNotFound)
	}
	limit = s.cfg.clampLimit(limit)

	content := s.contentScores(s.model.Doc(idx))
	collab := s.collab.itemScores(courseID, s.courseIDs)
	recs := s.blend("similar", content, collab, courseID)

	target := s.courses[idx]
	return s.toRecommendations(recs, limit, func(r scored) []string {
		return s.similarityReasons(target, r)
	}), nil
}

// CoursesBySkills ranks courses against a target skill list: text
// similarity over the normalized skills, plus a capped bonus for courses
// whose own skill list overlaps the targets.
func (s *Service) CoursesBySkills(ctx context.Context, skills []string, limit int) ([]domain.CourseRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	query := strings.TrimSpace(strings.Join(skills, " "))
	if query == "" {
		return nil, fmt.Errorf("no target skills given: %w", ErrInvalidQuery)
	}
	limit = s.cfg.clampLimit(limit)

	qvec := s.model.Vector(normalizer.Normalize(query))
	content := s.contentScores(qvec)

	recs := make([]scored, 0, len(s.courses))
	matches := make(map[string][]string, len(s.courses))
	for i, id := range s.courseIDs {
		score := content[id]
		matched := skillOverlap(skills, s.courses[i].Skills)
		if n := len(matched); n > 0 {
			bonus := 0.05 * float64(n)
			if bonus > 0.2 {
				bonus = 0.2
			}
			score += bonus
			matches[id] = matched
		}
		if score > 1 {
			score = 1
		}
		recs = append(recs, scored{idx: i, score: score})
	}
	s.sortScored(recs)

	return s.toRecommendations(recs, limit, func(r scored) []string {
		id := s.courseIDs[r.idx]
		if matched := matches[id]; len(matched) > 0 {
			return []string{fmt.Sprintf("Matches %d target skills: %s", len(matched), strings.Join(matched, ", "))}
		}
		return s.topicReasons(qvec, r.idx)
	}), nil
}

// PersonalizedCourses blends text similarity over the profile's skills and
// goals with rating predictions from similar users, then applies the
// profile preference boosts. A profile without interaction history degrades
// to pure content scoring.
func (s *Service) PersonalizedCourses(ctx context.Context, profile domain.UserProfile, limit int) ([]domain.CourseRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	terms := append(append([]string{}, profile.PreferredSkills...), profile.CareerGoals...)
	query := strings.TrimSpace(strings.Join(terms, " "))
	if query == "" {
		return nil, fmt.Errorf("profile has no skills or goals: %w", ErrInvalidQuery)
	}
	limit = s.cfg.clampLimit(limit)

	qvec := s.model.Vector(normalizer.Normalize(query))
	content := s.contentScores(qvec)

	var collab map[string]float64
	if profile.UserID != "" {
		collab = s.collab.predictForUser(profile.UserID, s.courseIDs)
	}
	recs := s.blend("personalized", content, collab, "")

	boostReasons := make(map[string][]string, len(recs))
	for i := range recs {
		course := s.courses[recs[i].idx]
		boosted, why := boostForProfile(recs[i].score, course, profile)
		recs[i].score = boosted
		boostReasons[course.CourseID] = why
	}
	s.sortScored(recs)

	return s.toRecommendations(recs, limit, func(r scored) []string {
		id := s.courseIDs[r.idx]
		reasons := boostReasons[id]
		if r.collab != nil && *r.collab > 0.5 {
			reasons = append(reasons, "Popular among similar learners")
		}
		if len(reasons) == 0 {
			reasons = s.topicReasons(qvec, r.idx)
		}
		return reasons
	}), nil
}

// TrendingCourses returns the highest-rated courses at or above a rating
// floor. Relevance is the rating scaled to [0,1]; no text or collaborative
// signal is involved.
func (s *Service) TrendingCourses(ctx context.Context, minRating float64, limit int) ([]domain.CourseRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if minRating == 0 {
		minRating = s.cfg.TrendingMinRating
	}
	if minRating < 0 || minRating > 5 {
		return nil, fmt.Errorf("min_rating %v out of range: %w", minRating, ErrInvalidQuery)
	}
	limit = s.cfg.clampLimit(limit)

	recs := make([]scored, 0)
	for i, c := range s.courses {
		if c.Rating >= minRating {
			recs = append(recs, scored{idx: i, score: c.Rating / 5})
		}
	}
	s.sortScored(recs)

	return s.toRecommendations(recs, limit, func(r scored) []string {
		c := s.courses[r.idx]
		return []string{fmt.Sprintf("Highly rated (%.1f/5) with %d reviews", c.Rating, c.ReviewCount)}
	}), nil
}

// CoursesByCareerText ranks courses against free-form career text, e.g. a
// career title plus its description.
func (s *Service) CoursesByCareerText(ctx context.Context, text string, limit int) ([]domain.CourseRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty career text: %w", ErrInvalidQuery)
	}
	limit = s.cfg.clampLimit(limit)

	qvec := s.model.Vector(normalizer.Normalize(text))
	content := s.contentScores(qvec)

	recs := make([]scored, 0, len(s.courses))
	for i, id := range s.courseIDs {
		recs = append(recs, scored{idx: i, score: content[id]})
	}
	s.sortScored(recs)

	return s.toRecommendations(recs, limit, func(r scored) []string {
		return s.topicReasons(qvec, r.idx)
	}), nil
}

// FilterParams narrows the catalog before pagination. Zero values mean "no
// constraint".
type FilterParams struct {
	Skills       []string
	Difficulty   string
	CourseType   string
	Organization string
	FreeOnly     bool
	MinRating    float64
	Page         int
	PerPage      int
}

// FilterCourses applies catalog filters and returns one page plus the total
// match count. Results are ordered by rating like the trending surface.
func (s *Service) FilterCourses(ctx context.Context, params FilterParams) ([]domain.CourseRecommendation, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("context error: %w", err)
	}
	if params.MinRating < 0 || params.MinRating > 5 {
		return nil, 0, fmt.Errorf("min_rating %v out of range: %w", params.MinRating, ErrInvalidQuery)
	}
	if params.Page <= 0 {
		params.Page = 1
	}
	params.PerPage = s.cfg.clampLimit(params.PerPage)

	recs := make([]scored, 0)
	for i, c := range s.courses {
		if !matchesFilter(c, params) {
			continue
		}
		recs = append(recs, scored{idx: i, score: c.Rating / 5})
	}
	s.sortScored(recs)
	total := len(recs)

	start := (params.Page - 1) * params.PerPage
	if start >= total {
		return []domain.CourseRecommendation{}, total, nil
	}
	end := start + params.PerPage
	if end > total {
		end = total
	}

	page := recs[start:end]
	return s.toRecommendations(page, len(page), nil), total, nil
}

func matchesFilter(c domain.Course, p FilterParams) bool {
	if p.Difficulty != "" && !strings.EqualFold(c.Difficulty, p.Difficulty) {
		return false
	}
	if p.CourseType != "" && !strings.EqualFold(c.CourseType, p.CourseType) {
		return false
	}
	if p.Organization != "" && !strings.EqualFold(c.Organization, p.Organization) {
		return false
	}
	if p.FreeOnly && !c.IsFree {
		return false
	}
	if c.Rating < p.MinRating {
		return false
	}
	if len(p.Skills) > 0 && len(skillOverlap(p.Skills, c.Skills)) == 0 {
		return false
	}
	return true
}

// CourseByID returns one catalog entry.
func (s *Service) CourseByID(ctx context.Context, courseID string) (domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return domain.Course{}, fmt.Errorf("context error: %w", err)
	}
	idx, ok := s.byID[courseID]
	if !ok {
		return domain.Course{}, fmt.Errorf("course %q: %w", courseID, ErrCourseNotFound)
	}
	return s.courses[idx], nil
}

// Courses returns the full catalog in load order. Callers must not mutate
// the shared slice contents.
func (s *Service) Courses() []domain.Course {
	return s.courses
}

// LogFeedback validates and appends one interaction event. With no event
// repository configured the event is counted and dropped.
func (s *Service) LogFeedback(ctx context.Context, event domain.InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	switch event.EventType {
	case EventView, EventEnroll, EventComplete:
	case EventRate:
		if event.Rating < 0 || event.Rating > 5 {
			return fmt.Errorf("rating %v out of range: %w", event.Rating, ErrInvalidQuery)
		}
	default:
		return fmt.Errorf("unknown event type %q: %w", event.EventType, ErrInvalidQuery)
	}
	if event.UserID == "" {
		return fmt.Errorf("missing user_id: %w", ErrInvalidQuery)
	}
	if _, ok := s.byID[event.CourseID]; !ok {
		return fmt.Errorf("course %q: %w", event.CourseID, ErrCourseNotFound)
	}

	if s.eventRepo != nil {
		if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
			logger.Error("failed to persist feedback event", err)
			return err
		}
	}
	metrics.FeedbackEvents.WithLabelValues(event.EventType).Inc()
	return nil
}

// Stats summarizes the loaded corpus for the admin surface.
func (s *Service) Stats() domain.EngineStats {
	rated := len(s.collab.courseRatings)
	coverage := 0.0
	if len(s.courses) > 0 {
		coverage = float64(rated) / float64(len(s.courses))
	}
	return domain.EngineStats{
		TotalCourses:          len(s.courses),
		VocabularySize:        s.model.VocabularySize(),
		TotalInteractions:     s.collab.interactionCount(),
		DistinctUsers:         len(s.collab.userRatings),
		RatedCourses:          rated,
		EmptyVectorCourses:    s.emptyVectors,
		CollaborativeCoverage: coverage,
	}
}

// DebugQuery exposes the component scores behind a similarity ranking.
func (s *Service) DebugQuery(ctx context.Context, courseID string, limit int) ([]domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	idx, ok := s.byID[courseID]
	if !ok {
		return nil, fmt.Errorf("course %q: %w", courseID, ErrCourseNotFound)
	}
	limit = s.cfg.clampLimit(limit)

	content := s.contentScores(s.model.Doc(idx))
	collab := s.collab.itemScores(courseID, s.courseIDs)

	candidates := make([]string, 0, len(s.courseIDs))
	for _, id := range s.courseIDs {
		if id != courseID {
			candidates = append(candidates, id)
		}
	}
	blendedScores, alpha, _ := blendScores(content, collab, candidates)

	recs := make([]scored, 0, len(blendedScores))
	byCourse := make(map[string]blended, len(blendedScores))
	for _, b := range blendedScores {
		byCourse[b.courseID] = b
		recs = append(recs, scored{idx: s.byID[b.courseID], score: b.finalScore})
	}
	s.sortScored(recs)
	if limit > len(recs) {
		limit = len(recs)
	}

	out := make([]domain.DebugRecommendation, 0, limit)
	for _, r := range recs[:limit] {
		c := s.courses[r.idx]
		b := byCourse[c.CourseID]
		out = append(out, domain.DebugRecommendation{
			CourseID:           c.CourseID,
			Title:              c.Title,
			ContentScore:       b.contentScore,
			CollaborativeScore: b.collabScore,
			Alpha:              alpha,
			FinalScore:         b.finalScore,
		})
	}
	return out, nil
}

// ---- match reasons ----

func (s *Service) similarityReasons(target domain.Course, r scored) []string {
	reasons := make([]string, 0, 2)
	if shared := skillOverlap(target.Skills, s.courses[r.idx].Skills); len(shared) > 0 {
		if len(shared) > 3 {
			shared = shared[:3]
		}
		reasons = append(reasons, "Covers related skills: "+strings.Join(shared, ", "))
	}
	if r.collab != nil && *r.collab > 0.5 {
		reasons = append(reasons, "Learners of this course also rated it highly")
	}
	if len(reasons) == 0 {
		reasons = s.topicReasons(s.model.Doc(s.byID[target.CourseID]), r.idx)
	}
	return reasons
}

// topicReasons names the strongest shared terms between a query vector and
// a course document.
func (s *Service) topicReasons(query sparseVec, idx int) []string {
	doc := s.model.Doc(idx)
	shared := make(sparseVec)
	for col, qw := range query {
		if dw, ok := doc[col]; ok {
			shared[col] = qw * dw
		}
	}
	if len(shared) == 0 {
		return nil
	}
	terms := s.model.TopTerms(shared, 3)
	for i, t := range terms {
		terms[i] = strings.ReplaceAll(t, "_", " ")
	}
	return []string{"Related topics: " + strings.Join(terms, ", ")}
}
