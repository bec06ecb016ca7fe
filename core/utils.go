package core

import (
	"context"
	"strings"
)

// Logger is any service that can log application events.
// expected args: error | map[string]interface{} | Learner
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Learner identifies the user a request acts for. There is no authentication; the id is trusted.
type Learner struct {
	ID string `json:"userId"`
}

type learnerCtxKey struct{}

func WithLearner(ctx context.Context, l Learner) context.Context {
	return context.WithValue(ctx, learnerCtxKey{}, l)
}

func LearnerFromContext(ctx context.Context) (Learner, bool) {
	l, ok := ctx.Value(learnerCtxKey{}).(Learner)
	return l, ok
}

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
