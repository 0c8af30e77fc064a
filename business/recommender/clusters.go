package recommender

import (
	"math"
	"sort"
	"strings"
)

// Clusters groups the model's documents into k groups by spherical k-means
// over their TF-IDF vectors. Initialization takes evenly spaced documents
// and iteration count is fixed, so the result is fully deterministic for a
// given corpus. Groups are returned as sorted document index slices.
func (m *TextModel) Clusters(k, iterations int) [][]int {
	n := len(m.docs)
	if n == 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	if iterations <= 0 {
		iterations = 10
	}

	// Evenly spaced seeds instead of random ones keep runs reproducible.
	centroids := make([]sparseVec, k)
	for c := 0; c < k; c++ {
		centroids[c] = cloneVec(m.docs[c*n/k])
	}

	assignment := make([]int, n)
	for iter := 0; iter < iterations; iter++ {
		changed := false
		for i, doc := range m.docs {
			best, bestSim := assignment[i], -1.0
			for c, centroid := range centroids {
				if sim := dotSparse(doc, centroid); sim > bestSim {
					best, bestSim = c, sim
				}
			}
			if best != assignment[i] {
				assignment[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		for c := range centroids {
			sum := make(sparseVec)
			count := 0
			for i, a := range assignment {
				if a != c {
					continue
				}
				for col, w := range m.docs[i] {
					sum[col] += w
				}
				count++
			}
			if count == 0 {
				continue // empty cluster keeps its old centroid
			}
			norm := 0.0
			for _, w := range sum {
				norm += w * w
			}
			if norm > 0 {
				norm = math.Sqrt(norm)
				for col := range sum {
					sum[col] /= norm
				}
			}
			centroids[c] = sum
		}
	}

	groups := make([][]int, k)
	for i, a := range assignment {
		groups[a] = append(groups[a], i)
	}
	for _, g := range groups {
		sort.Ints(g)
	}
	return groups
}

// ClusterLabel names a document group after its most frequent terms.
func (m *TextModel) ClusterLabel(docIdxs []int, terms int) string {
	if terms <= 0 {
		terms = 2
	}
	counts := make(map[int]int)
	for _, i := range docIdxs {
		if i < 0 || i >= len(m.docs) {
			continue
		}
		for col := range m.docs[i] {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return "General"
	}

	type termCount struct {
		term  string
		count int
	}
	tc := make([]termCount, 0, len(counts))
	for col, count := range counts {
		tc = append(tc, termCount{term: m.terms[col], count: count})
	}
	sort.Slice(tc, func(i, j int) bool {
		if tc[i].count != tc[j].count {
			return tc[i].count > tc[j].count
		}
		return tc[i].term < tc[j].term
	})
	if terms > len(tc) {
		terms = len(tc)
	}

	parts := make([]string, 0, terms)
	for _, t := range tc[:terms] {
		word := strings.ReplaceAll(t.term, "_", " ")
		parts = append(parts, titleCase(word))
	}
	return strings.Join(parts, " & ")
}

func cloneVec(v sparseVec) sparseVec {
	out := make(sparseVec, len(v))
	for col, w := range v {
		out[col] = w
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
