package entities

import (
	"context"
	"time"
)

// Recognizer is the external named-entity capability. Implementations must
// support at minimum the PERSON, ORG, MONEY, DATE, GPE and CARDINAL
// categories; models with a narrower label set may return fewer keys and the
// aggregator treats the missing ones as empty. Failures must come back as
// errors, never panics — the aggregator absorbs them.
type Recognizer interface {
	Recognize(ctx context.Context, text string) (map[string][]string, error)
}

// RecognizerFunc adapts a plain function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, text string) (map[string][]string, error)

func (f RecognizerFunc) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	return f(ctx, text)
}

// WithTimeout bounds every Recognize call with a deadline. A non-positive
// timeout returns inner unchanged.
func WithTimeout(inner Recognizer, timeout time.Duration) Recognizer {
	if timeout <= 0 {
		return inner
	}
	return RecognizerFunc(func(ctx context.Context, text string) (map[string][]string, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return inner.Recognize(ctx, text)
	})
}
