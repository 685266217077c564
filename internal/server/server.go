// Package server exposes the Naver search tools over the Model Context Protocol.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bornholm/naversearch/pkg/tool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"
)

// Args are the arguments of every Naver search tool.
type Args struct {
	Query string `json:"query"`
}

type Server struct {
	mcpServer *mcp.Server
	tools     []*tool.NaverSearch
}

// Serve connects the server to the transport and blocks until the session
// ends or the context is canceled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	slog.InfoContext(ctx, "starting mcp server",
		slog.String("transport", fmt.Sprintf("%T", transport)),
		slog.Int("tools", len(s.tools)),
	)

	session, err := s.mcpServer.Connect(ctx, transport)
	if err != nil {
		return errors.Wrap(err, "could not connect mcp server")
	}

	sessionDone := make(chan error, 1)
	go func() {
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		slog.InfoContext(ctx, "mcp session finished")
		return errors.WithStack(err)
	case <-ctx.Done():
		slog.InfoContext(ctx, "mcp server shutting down")
		return errors.WithStack(ctx.Err())
	}
}

func (s *Server) Tools() []*tool.NaverSearch {
	return s.tools
}

// Handler returns the MCP tool handler of the given Naver search tool.
func Handler(t *tool.NaverSearch) func(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[Args]) (*mcp.CallToolResultFor[any], error) {
	return func(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[Args]) (*mcp.CallToolResultFor[any], error) {
		items, err := t.Run(ctx, params.Arguments.Query)
		if err != nil {
			slog.WarnContext(ctx, "mcp tool call failed", slog.String("tool", t.Definition().Name), slog.Any("error", err))

			return &mcp.CallToolResultFor[any]{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
				IsError: true,
			}, nil
		}

		output, err := tool.Render(items)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return &mcp.CallToolResultFor[any]{
			Content: []mcp.Content{&mcp.TextContent{Text: output}},
		}, nil
	}
}

func New(version string, tools ...*tool.NaverSearch) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "naversearch",
		Version: version,
	}, nil)

	for _, t := range tools {
		definition := t.Definition()

		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        definition.Name,
			Description: definition.Description,
		}, Handler(t))

		slog.Debug("registered mcp tool", slog.String("name", definition.Name), slog.String("search_type", definition.SearchType.String()))
	}

	return &Server{
		mcpServer: mcpServer,
		tools:     tools,
	}
}
