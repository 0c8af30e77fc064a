package recommender

import (
	"math"

	"careerPlatform/domain"
)

// collabModel answers similarity questions over the sparse interaction
// matrix. All similarities are restricted to the overlap of co-rated
// entities: full-matrix cosine over mostly-zero rows makes unrelated users
// look alike just because neither rated anything.
type collabModel struct {
	userRatings   map[string]map[string]float64 // user -> course -> rating
	courseRatings map[string]map[string]float64 // course -> user -> rating
	userMeans     map[string]float64
	minOverlap    int
}

// newCollabModel reduces duplicate (user, course) pairs by averaging, then
// builds both orientations of the matrix.
func newCollabModel(interactions []domain.Interaction, minOverlap int) *collabModel {
	if minOverlap <= 0 {
		minOverlap = defaultMinOverlap
	}

	sums := make(map[string]map[string]float64)
	counts := make(map[string]map[string]int)
	for _, in := range interactions {
		if in.UserID == "" || in.CourseID == "" {
			continue
		}
		if sums[in.UserID] == nil {
			sums[in.UserID] = make(map[string]float64)
			counts[in.UserID] = make(map[string]int)
		}
		sums[in.UserID][in.CourseID] += in.Rating
		counts[in.UserID][in.CourseID]++
	}

	m := &collabModel{
		userRatings:   make(map[string]map[string]float64, len(sums)),
		courseRatings: make(map[string]map[string]float64),
		userMeans:     make(map[string]float64, len(sums)),
		minOverlap:    minOverlap,
	}

	for user, courses := range sums {
		row := make(map[string]float64, len(courses))
		total := 0.0
		for course, sum := range courses {
			rating := sum / float64(counts[user][course])
			row[course] = rating
			total += rating

			col, ok := m.courseRatings[course]
			if !ok {
				col = make(map[string]float64)
				m.courseRatings[course] = col
			}
			col[user] = rating
		}
		m.userRatings[user] = row
		m.userMeans[user] = total / float64(len(courses))
	}

	return m
}

func (m *collabModel) interactionCount() int {
	n := 0
	for _, row := range m.userRatings {
		n += len(row)
	}
	return n
}

// userSimilarity is Pearson correlation over the courses both users rated.
// ok=false means no signal: the pair overlaps on fewer than minOverlap
// courses, or the overlap carries no variance. Distinct from similarity 0.
func (m *collabModel) userSimilarity(a, b string) (float64, bool) {
	ra, okA := m.userRatings[a]
	rb, okB := m.userRatings[b]
	if !okA || !okB {
		return 0, false
	}
	if len(rb) < len(ra) {
		ra, rb = rb, ra
		a, b = b, a
	}

	meanA, meanB := m.userMeans[a], m.userMeans[b]
	num, denA, denB := 0.0, 0.0, 0.0
	overlap := 0
	for course, va := range ra {
		vb, ok := rb[course]
		if !ok {
			continue
		}
		da, db := va-meanA, vb-meanB
		num += da * db
		denA += da * da
		denB += db * db
		overlap++
	}

	if overlap < m.minOverlap || denA == 0 || denB == 0 {
		return 0, false
	}
	return num / (math.Sqrt(denA) * math.Sqrt(denB)), true
}

// itemSimilarity is cosine over the users who rated both courses. Ratings
// are non-negative, so the result stays in [0,1].
func (m *collabModel) itemSimilarity(a, b string) (float64, bool) {
	ca, okA := m.courseRatings[a]
	cb, okB := m.courseRatings[b]
	if !okA || !okB {
		return 0, false
	}
	if len(cb) < len(ca) {
		ca, cb = cb, ca
	}

	num, denA, denB := 0.0, 0.0, 0.0
	overlap := 0
	for user, va := range ca {
		vb, ok := cb[user]
		if !ok {
			continue
		}
		num += va * vb
		denA += va * va
		denB += vb * vb
		overlap++
	}

	if overlap < m.minOverlap || denA == 0 || denB == 0 {
		return 0, false
	}
	return num / (math.Sqrt(denA) * math.Sqrt(denB)), true
}

// itemScores returns a [0,1] collaborative score for every candidate with a
// defined similarity to the target course. Candidates without signal are
// absent from the map.
func (m *collabModel) itemScores(courseID string, candidates []string) map[string]float64 {
	scores := make(map[string]float64)
	for _, id := range candidates {
		if id == courseID {
			continue
		}
		if sim, ok := m.itemSimilarity(courseID, id); ok {
			scores[id] = sim
		}
	}
	return scores
}

// predictForUser estimates a [0,1] preference score per candidate course
// from the ratings of similar users. A brand-new user gets an empty map,
// never an error; the hybrid layer handles the cold start.
func (m *collabModel) predictForUser(userID string, candidates []string) map[string]float64 {
	scores := make(map[string]float64)
	own, ok := m.userRatings[userID]
	if !ok {
		return scores
	}

	type neighbor struct {
		id  string
		sim float64
	}
	neighbors := make([]neighbor, 0)
	for other := range m.userRatings {
		if other == userID {
			continue
		}
		if sim, ok := m.userSimilarity(userID, other); ok && sim != 0 {
			neighbors = append(neighbors, neighbor{id: other, sim: sim})
		}
	}
	if len(neighbors) == 0 {
		return scores
	}

	mean := m.userMeans[userID]
	for _, courseID := range candidates {
		if _, alreadyRated := own[courseID]; alreadyRated {
			continue
		}
		num, den := 0.0, 0.0
		for _, nb := range neighbors {
			rating, ok := m.userRatings[nb.id][courseID]
			if !ok {
				continue
			}
			num += nb.sim * (rating - m.userMeans[nb.id])
			den += math.Abs(nb.sim)
		}
		if den == 0 {
			continue
		}
		predicted := mean + num/den
		if predicted < 0 {
			predicted = 0
		} else if predicted > 5 {
			predicted = 5
		}
		scores[courseID] = predicted / 5
	}
	return scores
}
