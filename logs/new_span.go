package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan derives a context carrying a fresh span. An empty parent means the
// span found in ctx. attrs are logged with the span creation record.
type NewSpan func(ctx context.Context, parent Span, attrs ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, attrs ...any) (context.Context, Span) {
		creator, _ := ctx.Value(SpanKey).(Span)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := make([]any, 0, len(attrs)+4)
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		args = append(args, attrs...)
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
