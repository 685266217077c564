package tool

import (
	"context"
	"log/slog"

	"github.com/bornholm/genai/llm"
	"github.com/bornholm/naversearch/pkg/search"
	"github.com/pkg/errors"
)

func NewWebSearchTool(client search.Client) llm.Tool {
	return llm.NewFuncTool(
		"web_search",
		"execute a research on Naver about a topic across news, blogs and korean websites",
		llm.NewJSONSchema().
			RequiredProperty("topic", "the topic to research", "string"),
		func(ctx context.Context, params map[string]any) (string, error) {
			topic, err := llm.ToolParam[string](params, "topic")
			if err != nil {
				return "", errors.WithStack(err)
			}

			return WebSearch(ctx, client, topic)
		},
	)
}

// WebSearch runs the search and renders the results as markdown. Partial
// results are rendered when some of the underlying searches failed.
func WebSearch(ctx context.Context, client search.Client, topic string) (string, error) {
	slog.DebugContext(ctx, "executing a web search", slog.String("topic", topic))

	results, err := client.Search(ctx, topic)
	if err != nil {
		if len(results) == 0 {
			return "", errors.WithStack(err)
		}

		slog.WarnContext(ctx, "web search partially failed", slog.Any("error", err))
	}

	return search.Markdown(results), nil
}
