package logx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buff, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})

	ctx := WithAttrs(context.Background(), slog.String("search_type", "news"))
	ctx = WithAttrs(ctx, slog.String("tool", "naver_news_search"))

	logger.With(slog.Int("display", 10)).DebugContext(ctx, "executing search")

	line := buff.String()

	for _, expected := range []string{"search_type=news", "tool=naver_news_search", "display=10", `msg="executing search"`} {
		if !strings.Contains(line, expected) {
			t.Errorf("log line %q: missing %q", line, expected)
		}
	}
}

func TestAttrsWithoutValue(t *testing.T) {
	if attrs := Attrs(context.Background()); len(attrs) != 0 {
		t.Errorf("Attrs(): expected no attributes, got %v", attrs)
	}
}
