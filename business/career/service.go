package career

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"careerPlatform/business/recommender"
	"careerPlatform/domain"
	"careerPlatform/pkg/logger"
	"careerPlatform/pkg/normalizer"
)

const maxDescriptionLen = 300

// careerEntry is the aggregated view of one role across its Q&A rows.
type careerEntry struct {
	role        string
	careerID    string
	category    string
	description string
	qaCount     int
	text        string
}

// Service answers career catalog and matching queries. Like the course
// engine, everything is built once from the loaded Q&A rows and read-only
// afterwards.
type Service struct {
	entries []careerEntry
	byID    map[string]int
	model   *recommender.TextModel
}

// NewService groups Q&A rows by role, builds a text model over the combined
// question+answer text of each role, and derives career categories by
// clustering those texts.
func NewService(rows []domain.CareerQA) (*Service, error) {
	order := make([]string, 0)
	questions := make(map[string][]string)
	answers := make(map[string][]string)
	for _, row := range rows {
		role := strings.TrimSpace(row.Role)
		if role == "" || row.Answer == "" {
			continue
		}
		if _, seen := questions[role]; !seen {
			order = append(order, role)
		}
		questions[role] = append(questions[role], row.Question)
		answers[role] = append(answers[role], row.Answer)
	}
	if len(order) == 0 {
		return nil, ErrNoCareerData
	}

	s := &Service{
		entries: make([]careerEntry, 0, len(order)),
		byID:    make(map[string]int, len(order)),
	}
	docs := make([][]string, 0, len(order))
	for _, role := range order {
		text := strings.Join(questions[role], " ") + " " + strings.Join(answers[role], " ")
		entry := careerEntry{
			role:        role,
			careerID:    domain.CareerIDFor(role),
			description: truncate(answers[role][0], maxDescriptionLen),
			qaCount:     len(answers[role]),
			text:        text,
		}
		s.byID[entry.careerID] = len(s.entries)
		s.entries = append(s.entries, entry)
		docs = append(docs, normalizer.Normalize(text))
	}

	model, err := recommender.NewTextModel(docs)
	if err != nil {
		return nil, fmt.Errorf("career text model: %w", err)
	}
	s.model = model
	s.assignCategories()

	logger.Info("career matcher ready", "careers", len(s.entries), "qa_rows", len(rows))
	return s, nil
}

// assignCategories clusters career texts and labels each cluster from the
// most common words of its career names.
func (s *Service) assignCategories() {
	k := clusterCount(len(s.entries))
	for _, group := range s.model.Clusters(k, 10) {
		names := make([]string, 0, len(group))
		for _, idx := range group {
			names = append(names, s.entries[idx].role)
		}
		label := labelForNames(names)
		if label == "" {
			label = s.model.ClusterLabel(group, 1) + "-Related"
		}
		for _, idx := range group {
			s.entries[idx].category = label
		}
	}
}

func clusterCount(n int) int {
	k := n
	if k > 3 {
		k = 3
	}
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}
	return k
}

// labelForNames picks the most frequent meaningful word across the career
// names. A frequency tie between the top two words joins them.
func labelForNames(names []string) string {
	freq := make(map[string]int)
	for _, name := range names {
		for _, word := range strings.Fields(strings.ToLower(name)) {
			if len(word) > 2 && !labelStopwords[word] {
				freq[word]++
			}
		}
	}
	if len(freq) == 0 {
		return ""
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > 1 && freq[words[0]] == freq[words[1]] {
		return titleWord(words[0]) + " & " + titleWord(words[1])
	}
	return titleWord(words[0]) + " Careers"
}

var labelStopwords = map[string]bool{
	"and": true, "the": true, "for": true, "was": true, "were": true, "are": true,
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	cut := strings.LastIndex(s[:n], " ")
	if cut <= 0 {
		cut = n
	}
	return s[:cut] + "..."
}

// ---- queries ----

// Careers lists all known careers sorted by category then name.
func (s *Service) Careers(ctx context.Context) ([]domain.Career, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	out := make([]domain.Career, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, domain.Career{
			CareerID:   e.careerID,
			CareerName: e.role,
			Category:   e.category,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].CareerName < out[j].CareerName
	})
	return out, nil
}

// CareerByID resolves one career.
func (s *Service) CareerByID(ctx context.Context, careerID string) (domain.Career, error) {
	if err := ctx.Err(); err != nil {
		return domain.Career{}, fmt.Errorf("context error: %w", err)
	}
	idx, ok := s.byID[careerID]
	if !ok {
		return domain.Career{}, fmt.Errorf("career %q: %w", careerID, ErrCareerNotFound)
	}
	e := s.entries[idx]
	return domain.Career{CareerID: e.careerID, CareerName: e.role, Category: e.category}, nil
}

// Description returns the career's summary text, taken from its first
// answer.
func (s *Service) Description(careerID string) string {
	if idx, ok := s.byID[careerID]; ok {
		return s.entries[idx].description
	}
	return ""
}

// Text returns the combined Q&A text of a career, used as a query against
// the course catalog.
func (s *Service) Text(careerID string) (string, error) {
	idx, ok := s.byID[careerID]
	if !ok {
		return "", fmt.Errorf("career %q: %w", careerID, ErrCareerNotFound)
	}
	return s.entries[idx].text, nil
}

// QACount returns how many Q&A rows back a career.
func (s *Service) QACount(careerID string) int {
	if idx, ok := s.byID[careerID]; ok {
		return s.entries[idx].qaCount
	}
	return 0
}

// KeySkills returns the strongest terms of a career's text, a rough skill
// profile extracted by term weight.
func (s *Service) KeySkills(careerID string, n int) []string {
	idx, ok := s.byID[careerID]
	if !ok {
		return nil
	}
	terms := s.model.TopTerms(s.model.Doc(idx), n)
	for i, t := range terms {
		terms[i] = strings.ReplaceAll(t, "_", " ")
	}
	return terms
}

// AssessMatch scores every career against free-form user text and returns
// all matches, best first. Ties break on career_id so equal submissions
// rank identically.
func (s *Service) AssessMatch(ctx context.Context, userText string) ([]domain.CareerMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	tokens := normalizer.Normalize(userText)

	matches := make([]domain.CareerMatch, 0, len(s.entries))
	for i, e := range s.entries {
		matches = append(matches, domain.CareerMatch{
			CareerID:       e.careerID,
			CareerName:     e.role,
			MatchScore:     s.model.Score(tokens, i),
			MatchingSkills: s.KeySkills(e.careerID, 10),
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].CareerID < matches[j].CareerID
	})
	return matches, nil
}
