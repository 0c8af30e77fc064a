package normalizer

import (
	"reflect"
	"testing"
)

func TestNormalize_PreservesShortTechTerms(t *testing.T) {
	tokens := Normalize("Learn SQL and Go for the web")

	want := []string{"learn", "sql", "go", "web"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Normalize() = %v, want %v", tokens, want)
	}
}

func TestNormalize_MergesCompounds(t *testing.T) {
	tokens := Normalize("Introduction to Machine Learning and Data Science")

	want := []string{"introduction", "machine_learning", "data_science"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Normalize() = %v, want %v", tokens, want)
	}
}

func TestNormalize_LongestCompoundWins(t *testing.T) {
	tokens := Normalize("natural language processing basics")

	want := []string{"natural_language_processing", "basic"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Normalize() = %v, want %v", tokens, want)
	}
}

func TestNormalize_DropsNoise(t *testing.T) {
	tokens := Normalize("<p>https://example.com #trending 2024!!</p>")

	if len(tokens) != 0 {
		t.Errorf("expected no tokens from pure noise, got %v", tokens)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if tokens := Normalize(""); len(tokens) != 0 {
		t.Errorf("expected empty token list, got %v", tokens)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	text := "Advanced Machine Learning with Python: regression, classification and SQL pipelines"

	first := Normalize(text)
	for i := 0; i < 10; i++ {
		if got := Normalize(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestLemmatize(t *testing.T) {
	cases := map[string]string{
		"libraries": "library",
		"classes":   "class",
		"pipelines": "pipeline",
		"business":  "business",
		"analysis":  "analysi",
		"css":       "css",
	}
	for in, want := range cases {
		if got := lemmatize(in); got != want {
			t.Errorf("lemmatize(%q) = %q, want %q", in, got, want)
		}
	}
}
