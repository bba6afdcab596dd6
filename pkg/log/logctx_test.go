package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Покрытие:
//  - From без логгера в контексте -> slog.Default();
//  - Into/From round-trip, устойчивость к nil и «мусору» по ключу;
//  - With дополняет логгер атрибутами, не трогая родительский контекст.
//
// Тесты меняют slog.Default(), поэтому намеренно НЕ используют t.Parallel().

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFrom_ReturnsDefault(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))

	var nilLogger *slog.Logger
	require.Equal(t, def, From(context.WithValue(context.Background(), ctxKey{}, nilLogger)))
	require.Equal(t, def, From(context.WithValue(context.Background(), ctxKey{}, "not-a-logger")))
}

func TestIntoAndFrom_RoundTrip(t *testing.T) {
	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
}

func TestWith_AddsAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	parent := Into(context.Background(), base)
	child := With(parent, "request_id", "rid-1")

	From(child).Info("hello")
	require.Contains(t, buf.String(), "request_id=rid-1")

	buf.Reset()
	From(parent).Info("parent")
	require.NotContains(t, buf.String(), "request_id")
}

func TestWith_NoArgsKeepsContext(t *testing.T) {
	ctx := Into(context.Background(), newSilent())
	require.Equal(t, ctx, With(ctx))
}
