package career

import "errors"

var (
	// ErrCareerNotFound means the career_id has no rows in the Q&A dataset.
	ErrCareerNotFound = errors.New("career not found")

	// ErrNoCareerData is fatal: the Q&A dataset loaded empty. Startup-only.
	ErrNoCareerData = errors.New("no career data")
)
