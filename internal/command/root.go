package command

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bornholm/naversearch/internal/logx"
	"github.com/urfave/cli/v2"
)

func Main(name string, version string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  version,
		Before: func(ctx *cli.Context) error {
			logger := slog.New(logx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: parseLogLevel(ctx.String("log-level")),
				}),
			})
			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"NAVERSEARCH_WORKDIR"},
				Usage:   "Directory against which relative --env-file, --output and --output-dir paths are resolved",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"NAVERSEARCH_DEBUG"},
				Usage:   "Enable debug mode",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"NAVERSEARCH_LOG_LEVEL"},
				Usage:   "Set logging level",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:      "env-file",
				EnvVars:   []string{"NAVERSEARCH_ENV_FILE"},
				Usage:     "Dotenv file providing NAVER_CLIENT_ID and NAVER_CLIENT_SECRET",
				Value:     ".env",
				TakesFile: true,
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// ResolvePath resolves a relative path against the --workdir global flag.
func ResolvePath(ctx *cli.Context, path string) string {
	return resolvePath(ctx.String("workdir"), path)
}

func resolvePath(workdir string, path string) string {
	if path == "" || workdir == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workdir, path)
}

func parseLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
