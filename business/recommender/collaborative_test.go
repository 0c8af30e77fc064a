package recommender

import (
	"math"
	"testing"

	"careerPlatform/domain"
)

func ratings(rows ...[3]any) []domain.Interaction {
	out := make([]domain.Interaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Interaction{
			UserID:   r[0].(string),
			CourseID: r[1].(string),
			Rating:   r[2].(float64),
		})
	}
	return out
}

func TestCollabModel_DuplicatesAveraged(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 2.0},
		[3]any{"u1", "c1", 4.0},
	), 2)

	if got := m.userRatings["u1"]["c1"]; got != 3.0 {
		t.Errorf("duplicate rating averaged to %v, want 3", got)
	}
	if got := m.interactionCount(); got != 1 {
		t.Errorf("interactionCount = %d, want 1", got)
	}
}

func TestUserSimilarity_NoSignalBelowOverlap(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 5.0},
		[3]any{"u1", "c2", 1.0},
		[3]any{"u2", "c1", 4.0},
		[3]any{"u2", "c3", 2.0},
	), 2)

	// u1 and u2 share only c1.
	if _, ok := m.userSimilarity("u1", "u2"); ok {
		t.Error("expected no signal for a single co-rated course")
	}
	if _, ok := m.userSimilarity("u1", "missing"); ok {
		t.Error("expected no signal for an unknown user")
	}
}

func TestUserSimilarity_PerfectAgreement(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 5.0},
		[3]any{"u1", "c2", 1.0},
		[3]any{"u2", "c1", 4.0},
		[3]any{"u2", "c2", 2.0},
	), 2)

	sim, ok := m.userSimilarity("u1", "u2")
	if !ok {
		t.Fatal("expected a similarity signal")
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Errorf("similarity = %v, want 1 (same preference direction)", sim)
	}
}

func TestUserSimilarity_NoVarianceMeansNoSignal(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 3.0},
		[3]any{"u1", "c2", 3.0},
		[3]any{"u2", "c1", 5.0},
		[3]any{"u2", "c2", 1.0},
	), 2)

	if _, ok := m.userSimilarity("u1", "u2"); ok {
		t.Error("flat ratings carry no preference signal")
	}
}

func TestItemSimilarity_BoundedAndGated(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 5.0},
		[3]any{"u1", "c2", 4.0},
		[3]any{"u2", "c1", 4.0},
		[3]any{"u2", "c2", 5.0},
		[3]any{"u3", "c3", 5.0},
	), 2)

	sim, ok := m.itemSimilarity("c1", "c2")
	if !ok {
		t.Fatal("expected a similarity signal for co-rated courses")
	}
	if sim < 0 || sim > 1 {
		t.Errorf("item similarity = %v, want within [0,1]", sim)
	}

	if _, ok := m.itemSimilarity("c1", "c3"); ok {
		t.Error("expected no signal without co-raters")
	}
}

func TestItemScores_AbsentMeansNoSignal(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 5.0},
		[3]any{"u1", "c2", 4.0},
		[3]any{"u2", "c1", 4.0},
		[3]any{"u2", "c2", 5.0},
		[3]any{"u3", "c3", 5.0},
	), 2)

	scores := m.itemScores("c1", []string{"c1", "c2", "c3"})
	if _, ok := scores["c1"]; ok {
		t.Error("course must not score against itself")
	}
	if _, ok := scores["c2"]; !ok {
		t.Error("expected a score for the co-rated course")
	}
	if _, ok := scores["c3"]; ok {
		t.Error("no-signal course must be absent, not zero")
	}
}

func TestPredictForUser_UnknownUserGetsEmptyMap(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 5.0},
	), 2)

	scores := m.predictForUser("stranger", []string{"c1"})
	if len(scores) != 0 {
		t.Errorf("expected empty predictions for unknown user, got %v", scores)
	}
}

func TestPredictForUser_BoundsAndSkipsRated(t *testing.T) {
	m := newCollabModel(ratings(
		[3]any{"u1", "c1", 5.0},
		[3]any{"u1", "c2", 1.0},
		[3]any{"u2", "c1", 5.0},
		[3]any{"u2", "c2", 1.0},
		[3]any{"u2", "c3", 5.0},
	), 2)

	scores := m.predictForUser("u1", []string{"c1", "c2", "c3"})
	if _, ok := scores["c1"]; ok {
		t.Error("already-rated course must not be predicted")
	}
	for id, s := range scores {
		if s < 0 || s > 1 {
			t.Errorf("prediction for %s = %v, want within [0,1]", id, s)
		}
	}
	if _, ok := scores["c3"]; !ok {
		t.Error("expected a prediction for the neighbor-rated course")
	}
}
