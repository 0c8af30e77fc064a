package recommender

type Config struct {
	// Result limit clamp range. Out-of-range limits are clamped, never
	// rejected.
	LimitDefault int
	LimitMax     int

	// Minimum number of co-rated entities before a collaborative similarity
	// is considered a signal. Below this the pair reports "no signal".
	MinOverlap int

	// Default rating floor for trending queries.
	TrendingMinRating float64
}

const (
	defaultLimit            = 20
	defaultLimitMax         = 100
	defaultMinOverlap       = 2
	defaultTrendingMinScore = 4.0
)

func DefaultConfig() Config {
	return Config{
		LimitDefault:      defaultLimit,
		LimitMax:          defaultLimitMax,
		MinOverlap:        defaultMinOverlap,
		TrendingMinRating: defaultTrendingMinScore,
	}
}

// clampLimit keeps a requested result count inside [1, LimitMax].
// Non-positive values fall back to the default.
func (c Config) clampLimit(limit int) int {
	if limit <= 0 {
		return c.LimitDefault
	}
	if limit > c.LimitMax {
		return c.LimitMax
	}
	return limit
}
