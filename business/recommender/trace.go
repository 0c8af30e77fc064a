package recommender

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const TraceIDKey ctxKey = "trace_id"

func NewTraceID() string {
	return uuid.NewString()
}

func TraceIDFromContext(ctx context.Context) string {
	if v := ctx.Value(TraceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
