package recommender

import (
	"math"
	"sort"
)

// sparseVec is one TF-IDF vector: column index -> weight. Only nonzero
// entries are stored; vocabulary size usually exceeds corpus size.
type sparseVec map[int]float64

// TextModel holds a vocabulary and per-document TF-IDF vectors. Built once,
// read-only afterwards. Weight for token t in document d is
// tf(t,d) * log(N/df(t)); vectors are L2-normalized so cosine similarity is
// a plain dot product.
type TextModel struct {
	vocab map[string]int
	terms []string // index -> token, sorted for stable column order
	idf   []float64
	docs  []sparseVec
}

// NewTextModel builds a model over already-normalized token sequences.
// Returns ErrEmptyVocabulary when no document contributes a single token.
func NewTextModel(docs [][]string) (*TextModel, error) {
	df := make(map[string]int)
	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &TextModel{
		vocab: make(map[string]int, len(terms)),
		terms: terms,
		idf:   make([]float64, len(terms)),
	}

	n := float64(len(docs))
	for i, term := range terms {
		m.vocab[term] = i
		// Tokens in every document get idf 0 and carry no signal.
		m.idf[i] = math.Log(n / float64(df[term]))
	}

	m.docs = make([]sparseVec, len(docs))
	for i, tokens := range docs {
		m.docs[i] = m.Vector(tokens)
	}

	return m, nil
}

// Vector computes the L2-normalized TF-IDF vector for a token sequence.
// Out-of-vocabulary tokens are dropped. An empty or fully-OOV sequence
// produces the zero vector, never NaN.
func (m *TextModel) Vector(tokens []string) sparseVec {
	counts := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if idx, ok := m.vocab[tok]; ok {
			counts[idx]++
			total++
		}
	}

	vec := make(sparseVec, len(counts))
	if total == 0 {
		return vec
	}

	var norm float64
	for idx, count := range counts {
		w := (float64(count) / float64(total)) * m.idf[idx]
		if w > 0 {
			vec[idx] = w
			norm += w * w
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// Doc returns the precomputed vector for document i.
func (m *TextModel) Doc(i int) sparseVec {
	return m.docs[i]
}

// Score is the cosine similarity between a token sequence and document i.
func (m *TextModel) Score(tokens []string, i int) float64 {
	return dotSparse(m.Vector(tokens), m.docs[i])
}

func (m *TextModel) VocabularySize() int {
	return len(m.terms)
}

// TopTerms returns the n highest-weighted tokens of a vector, weight desc
// then token asc for determinism.
func (m *TextModel) TopTerms(vec sparseVec, n int) []string {
	type termWeight struct {
		term   string
		weight float64
	}
	tw := make([]termWeight, 0, len(vec))
	for idx, w := range vec {
		tw = append(tw, termWeight{term: m.terms[idx], weight: w})
	}
	sort.Slice(tw, func(i, j int) bool {
		if tw[i].weight != tw[j].weight {
			return tw[i].weight > tw[j].weight
		}
		return tw[i].term < tw[j].term
	})
	if n > len(tw) {
		n = len(tw)
	}
	out := make([]string, 0, n)
	for _, t := range tw[:n] {
		out = append(out, t.term)
	}
	return out
}

// dotSparse computes the dot product of two sparse vectors. For
// L2-normalized inputs this is the cosine similarity; a zero vector yields
// 0 against everything.
func dotSparse(a, b sparseVec) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	sum := 0.0
	for idx, va := range a {
		if vb, ok := b[idx]; ok {
			sum += va * vb
		}
	}
	return sum
}
