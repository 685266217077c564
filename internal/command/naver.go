package command

import (
	"github.com/bornholm/naversearch/pkg/search/naver"
	"github.com/bornholm/naversearch/pkg/tool"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// NaverClient creates a Naver client from the environment and the
// --env-file global flag, resolved against --workdir.
func NaverClient(ctx *cli.Context, funcs ...naver.OptionFunc) (*naver.Client, error) {
	conf, err := naver.ConfigFromEnv(ResolvePath(ctx, ctx.String("env-file")))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "NAVER_CLIENT_ID and NAVER_CLIENT_SECRET must be set")
	}

	funcs = append([]naver.OptionFunc{naver.WithConfig(conf)}, funcs...)

	return naver.NewClient(funcs...), nil
}

// SearchFlags are the request flags shared by the commands issuing searches.
func SearchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "display",
			Value:   naver.DefaultDisplay,
			Aliases: []string{"n"},
			EnvVars: []string{"NAVERSEARCH_DISPLAY"},
			Usage:   "Number of results requested to the API (1-100)",
		},
		&cli.IntFlag{
			Name:    "start",
			Value:   naver.DefaultStart,
			EnvVars: []string{"NAVERSEARCH_START"},
			Usage:   "Position of the first result (1-1000)",
		},
		&cli.StringFlag{
			Name:    "sort",
			Value:   string(naver.SortSimilarity),
			EnvVars: []string{"NAVERSEARCH_SORT"},
			Usage:   "Sort order, 'sim' or 'date'",
		},
		&cli.IntFlag{
			Name:    "max-results",
			Value:   naver.DefaultDisplay,
			Aliases: []string{"m"},
			EnvVars: []string{"NAVERSEARCH_MAX_RESULTS"},
			Usage:   "Maximum number of returned results, 0 to disable",
		},
	}
}

// ToolOptions converts the search flags to tool options.
func ToolOptions(ctx *cli.Context) []tool.NaverSearchOptionFunc {
	return []tool.NaverSearchOptionFunc{
		tool.WithDisplay(ctx.Int("display")),
		tool.WithStart(ctx.Int("start")),
		tool.WithSort(naver.Sort(ctx.String("sort"))),
		tool.WithMaxResults(ctx.Int("max-results")),
	}
}
