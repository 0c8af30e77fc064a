package roadmap

import (
	"sort"
	"strings"

	"careerPlatform/domain"
)

var categoryStopwords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "could": true, "should": true,
	"this": true, "that": true, "these": true, "those": true, "you": true,
	"your": true, "it": true, "its": true, "they": true, "their": true, "we": true,
	"our": true, "an": true,
}

var (
	toolIndicators      = []string{"software", "platform", "framework", "library", "tool"}
	softIndicators      = []string{"communication", "leadership", "teamwork", "presentation", "management"}
	practicalIndicators = []string{"project", "application", "implementation", "development", "analysis"}
)

// skillCategories buckets catalog skill terms by where they show up:
// beginner courses feed the foundation bucket, advanced courses the
// advanced bucket, and overall frequency the technical/tools/soft buckets.
type skillCategories struct {
	foundation map[string]bool
	technical  map[string]bool
	tools      map[string]bool
	advanced   map[string]bool
	soft       map[string]bool
}

func buildSkillCategories(courses []domain.Course) skillCategories {
	var beginner, advanced, all []string
	for _, c := range courses {
		for _, skill := range c.Skills {
			all = append(all, skill)
			switch c.Difficulty {
			case domain.DifficultyBeginner:
				beginner = append(beginner, skill)
			case domain.DifficultyAdvanced:
				advanced = append(advanced, skill)
			}
		}
	}

	foundationTerms := frequentTerms(beginner, 5)
	advancedTerms := frequentTerms(advanced, 3)
	allTerms := frequentTerms(all, 10)

	return skillCategories{
		foundation: toSet(capped(foundationTerms, 15)),
		technical:  toSet(capped(allTerms, 20)),
		tools:      toSet(capped(withIndicator(allTerms, toolIndicators), 10)),
		advanced:   toSet(capped(advancedTerms, 10)),
		soft:       toSet(capped(withIndicator(allTerms, softIndicators), 8)),
	}
}

// frequentTerms splits skill phrases into words, drops stopwords and short
// tokens, and returns the terms at or above the frequency floor, most
// frequent first. Equal counts order alphabetically for stability.
func frequentTerms(skills []string, minFreq int) []string {
	freq := make(map[string]int)
	for _, skill := range skills {
		for _, word := range strings.Fields(strings.ToLower(skill)) {
			if len(word) > 2 && !categoryStopwords[word] {
				freq[word]++
			}
		}
	}

	terms := make([]string, 0, len(freq))
	for term, count := range freq {
		if count >= minFreq {
			terms = append(terms, term)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	return terms
}

func withIndicator(terms []string, indicators []string) []string {
	out := make([]string, 0)
	for _, term := range terms {
		for _, ind := range indicators {
			if strings.Contains(term, ind) {
				out = append(out, term)
				break
			}
		}
	}
	return out
}

func isPractical(skill string) bool {
	s := strings.ToLower(skill)
	for _, ind := range practicalIndicators {
		if strings.Contains(s, ind) {
			return true
		}
	}
	return false
}

func capped(terms []string, n int) []string {
	if len(terms) > n {
		return terms[:n]
	}
	return terms
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = true
	}
	return set
}
