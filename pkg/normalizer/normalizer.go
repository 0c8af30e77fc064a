package normalizer

import (
	"regexp"
	"strings"
)

// Normalize turns raw text into an ordered sequence of lowercase tokens:
// noise removal, compound preservation (underscore-joined), stopword
// filtering with a preserve list for short tech terms, and light
// lemmatization. Pure and deterministic.
func Normalize(text string) []string {
	text = strings.ToLower(text)
	text = cleanNoise(text)
	tokens := strings.Fields(text)
	tokens = mergeCompounds(tokens)

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, keep := preserveTerms[tok]; keep {
			out = append(out, tok)
			continue
		}
		if strings.Contains(tok, "_") {
			out = append(out, tok)
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if len(tok) <= 2 || !isAlpha(tok) {
			continue
		}
		out = append(out, lemmatize(tok))
	}
	return out
}

var (
	htmlTagRe = regexp.MustCompile(`<.*?>`)
	urlRe     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	hashtagRe = regexp.MustCompile(`#\w+`)
	punctRe   = regexp.MustCompile(`[^\w\s]`)
	digitRe   = regexp.MustCompile(`\d+`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

func cleanNoise(text string) string {
	text = htmlTagRe.ReplaceAllString(text, "")
	text = urlRe.ReplaceAllString(text, "")
	text = hashtagRe.ReplaceAllString(text, "")
	text = punctRe.ReplaceAllString(text, "")
	text = digitRe.ReplaceAllString(text, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// mergeCompounds joins known multi-word terms into single underscore tokens
// so they survive as one vocabulary entry. Longest compounds first.
func mergeCompounds(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	i := 0
	for i < len(tokens) {
		matched := false
		for size := maxCompoundLen; size >= 2; size-- {
			if i+size > len(tokens) {
				continue
			}
			candidate := strings.Join(tokens[i:i+size], " ")
			if _, ok := compounds[candidate]; ok {
				out = append(out, strings.ReplaceAll(candidate, " ", "_"))
				i += size
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}

// lemmatize strips common inflection suffixes. Deliberately conservative:
// a wrong merge is worse than a missed one.
func lemmatize(tok string) string {
	switch {
	case strings.HasSuffix(tok, "ies") && len(tok) > 4:
		return tok[:len(tok)-3] + "y"
	case strings.HasSuffix(tok, "sses"):
		return tok[:len(tok)-2]
	case strings.HasSuffix(tok, "s") && !strings.HasSuffix(tok, "ss") && !strings.HasSuffix(tok, "us") && len(tok) > 3:
		return tok[:len(tok)-1]
	}
	return tok
}
