package serve

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/bornholm/naversearch/internal/command"
	"github.com/bornholm/naversearch/internal/server"
	"github.com/bornholm/naversearch/pkg/tool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Serve() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Expose the Naver search tools as a MCP server on stdio",
		Flags: command.SearchFlags(),
		Action: func(cliCtx *cli.Context) error {
			client, err := command.NaverClient(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			ctx, cancel := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			tools := tool.NewNaverSearchTools(client, command.ToolOptions(cliCtx)...)

			srv := server.New(cliCtx.App.Version, tools...)

			if err := srv.Serve(ctx, mcp.NewStdioTransport()); err != nil && !errors.Is(err, context.Canceled) {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
