package recommender

import (
	"strings"

	"careerPlatform/domain"
)

// alphaForCoverage maps interaction coverage to the content weight of the
// hybrid blend. Zero coverage means pure content (cold start), full
// coverage still keeps content at half weight.
func alphaForCoverage(coverage float64) float64 {
	if coverage <= 0 {
		return 1
	}
	if coverage > 1 {
		coverage = 1
	}
	return 1 - 0.5*coverage
}

// blended holds the per-candidate outcome of a hybrid blend, kept around
// for the debug surface.
type blended struct {
	courseID     string
	contentScore float64
	collabScore  *float64
	finalScore   float64
}

// blendScores combines content scores with collaborative scores. Candidates
// missing from collab fall back to their content score alone rather than
// being treated as collab 0. Returns the per-candidate results plus the
// alpha and coverage that produced them.
func blendScores(content map[string]float64, collab map[string]float64, candidates []string) ([]blended, float64, float64) {
	coverage := 0.0
	if len(candidates) > 0 {
		covered := 0
		for _, id := range candidates {
			if _, ok := collab[id]; ok {
				covered++
			}
		}
		coverage = float64(covered) / float64(len(candidates))
	}
	alpha := alphaForCoverage(coverage)

	out := make([]blended, 0, len(candidates))
	for _, id := range candidates {
		b := blended{courseID: id, contentScore: content[id]}
		if cs, ok := collab[id]; ok {
			v := cs
			b.collabScore = &v
			b.finalScore = alpha*b.contentScore + (1-alpha)*cs
		} else {
			b.finalScore = b.contentScore
		}
		out = append(out, b)
	}
	return out, alpha, coverage
}

// skillOverlap counts how many target skills appear in the course skill
// list, case-insensitively and in either direction of containment so that
// "sql" matches "PostgreSQL fundamentals".
func skillOverlap(targets []string, courseSkills []string) []string {
	matched := make([]string, 0)
	for _, target := range targets {
		t := strings.ToLower(strings.TrimSpace(target))
		if t == "" {
			continue
		}
		for _, skill := range courseSkills {
			s := strings.ToLower(skill)
			if strings.Contains(s, t) || strings.Contains(t, s) {
				matched = append(matched, target)
				break
			}
		}
	}
	return matched
}

// boostForProfile applies the personalization adjustments on top of a base
// score: difficulty match, budget match, and a capped per-skill overlap
// bonus. The result is clamped to [0,1].
func boostForProfile(score float64, course domain.Course, profile domain.UserProfile) (float64, []string) {
	reasons := make([]string, 0, 2)

	if profile.DifficultyPreference != "" &&
		strings.EqualFold(course.Difficulty, profile.DifficultyPreference) {
		score += 0.1
		reasons = append(reasons, "Matches your experience level")
	}
	if strings.EqualFold(profile.BudgetPreference, "free") && course.IsFree {
		score += 0.1
		reasons = append(reasons, "Free course")
	}
	if len(profile.PreferredSkills) > 0 {
		matched := skillOverlap(profile.PreferredSkills, course.Skills)
		if n := len(matched); n > 0 {
			bonus := 0.05 * float64(n)
			if bonus > 0.2 {
				bonus = 0.2
			}
			score += bonus
			reasons = append(reasons, "Builds on your skills: "+strings.Join(matched, ", "))
		}
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score, reasons
}
