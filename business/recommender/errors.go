package recommender

import "errors"

var (
	// ErrCourseNotFound means the requested course_id is not in the corpus.
	ErrCourseNotFound = errors.New("course not found")

	// ErrInvalidQuery means the request parameters cannot be interpreted
	// (empty skill list, malformed rating, unknown event type).
	ErrInvalidQuery = errors.New("invalid query")

	// ErrEmptyVocabulary is fatal: the corpus produced no usable tokens, so
	// the engine cannot be constructed. Startup-only.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
)
