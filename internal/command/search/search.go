package search

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bornholm/naversearch/internal/command"
	"github.com/bornholm/naversearch/internal/logx"
	se "github.com/bornholm/naversearch/pkg/search"
	"github.com/bornholm/naversearch/pkg/search/naver"
	"github.com/bornholm/naversearch/pkg/tool"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"
)

const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

func Search() *cli.Command {
	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "type",
			Value:   cli.NewStringSlice(string(naver.News)),
			Aliases: []string{"t"},
			EnvVars: []string{"NAVERSEARCH_TYPE"},
			Usage:   "Search type (news, blog, web, book, image, shopping, cafe, kin, encyclopedia, academic, local), repeatable",
		},
		&cli.StringFlag{
			Name:    "format",
			Value:   FormatJSON,
			Aliases: []string{"f"},
			EnvVars: []string{"NAVERSEARCH_FORMAT"},
			Usage:   "Output format, 'json', 'yaml' or 'markdown'",
		},
		&cli.IntFlag{
			Name:    "retries",
			Value:   0,
			EnvVars: []string{"NAVERSEARCH_RETRIES"},
			Usage:   "Number of retries on transient failures",
		},
		&cli.StringFlag{
			Name:      "output",
			Value:     "",
			Aliases:   []string{"o"},
			EnvVars:   []string{"NAVERSEARCH_OUTPUT"},
			TakesFile: true,
			Usage:     "Output file, default to stdout",
		},
		&cli.StringFlag{
			Name:      "output-dir",
			Value:     "",
			EnvVars:   []string{"NAVERSEARCH_OUTPUT_DIR"},
			TakesFile: true,
			Usage:     "Directory where the output is written, the file is named after the query",
		},
	}

	return &cli.Command{
		Name:      "search",
		Usage:     "Query the Naver search API",
		ArgsUsage: "<query>",
		Flags:     append(flags, command.SearchFlags()...),
		Action: func(cliCtx *cli.Context) error {
			query := strings.TrimSpace(strings.Join(cliCtx.Args().Slice(), " "))
			if query == "" {
				return errors.New("a search query must be given")
			}

			format := cliCtx.String("format")
			if format != FormatJSON && format != FormatYAML && format != FormatMarkdown {
				return errors.Errorf("unknown output format '%s'", format)
			}

			searchTypes, err := ParseSearchTypes(cliCtx.StringSlice("type"))
			if err != nil {
				return errors.WithStack(err)
			}

			client, err := command.NaverClient(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			toolOptions := append(command.ToolOptions(cliCtx), tool.WithRetries(cliCtx.Int("retries"), time.Second))

			searchClient := tool.NewMultiSearch(client, searchTypes, toolOptions...)

			ctx := logx.WithAttrs(cliCtx.Context, slog.String("query", query))

			results, err := searchClient.Search(ctx, query)
			if err != nil {
				if len(results) == 0 {
					return errors.Wrap(err, "search failed")
				}

				slog.WarnContext(ctx, "some searches failed", slog.Any("error", err))
			}

			slog.InfoContext(ctx, "search done", slog.Int("results", len(results)), slog.Any("types", searchTypes))

			data, err := Render(results, format)
			if err != nil {
				return errors.WithStack(err)
			}

			output := command.ResolvePath(cliCtx, cliCtx.String("output"))
			if output == "" {
				if outputDir := cliCtx.String("output-dir"); outputDir != "" {
					output = filepath.Join(command.ResolvePath(cliCtx, outputDir), OutputFilename(query, format))
				}
			}

			if output == "" {
				if _, err := os.Stdout.Write(data); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return errors.Wrapf(err, "failed to write search results")
			}

			slog.InfoContext(ctx, "search results written", slog.String("output", output))

			return nil
		},
	}
}

// ParseSearchTypes resolves the given search types, ignoring duplicates.
func ParseSearchTypes(rawTypes []string) ([]naver.SearchType, error) {
	searchTypes := make([]naver.SearchType, 0, len(rawTypes))
	seen := make(map[naver.SearchType]struct{})

	for _, raw := range rawTypes {
		for _, r := range strings.Split(raw, ",") {
			searchType, err := naver.ParseSearchType(r)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			if _, exists := seen[searchType]; exists {
				continue
			}

			seen[searchType] = struct{}{}
			searchTypes = append(searchTypes, searchType)
		}
	}

	if len(searchTypes) == 0 {
		return nil, errors.New("at least one search type must be given")
	}

	return searchTypes, nil
}

// Render encodes the results in the given format.
func Render(results []se.Result, format string) ([]byte, error) {
	if results == nil {
		results = []se.Result{}
	}

	switch format {
	case FormatMarkdown:
		return []byte(se.Markdown(results)), nil

	case FormatYAML:
		var buff bytes.Buffer

		encoder := yaml.NewEncoder(&buff)
		encoder.SetIndent(2)

		if err := encoder.Encode(results); err != nil {
			return nil, errors.WithStack(err)
		}

		if err := encoder.Close(); err != nil {
			return nil, errors.WithStack(err)
		}

		return buff.Bytes(), nil

	case FormatJSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return append(data, '\n'), nil

	default:
		return nil, errors.Errorf("unknown output format '%s'", format)
	}
}

// OutputFilename derives a file name from the query.
func OutputFilename(query string, format string) string {
	extension := format
	if format == FormatMarkdown {
		extension = "md"
	}

	name := slug.Make(query)
	if name == "" {
		name = "search"
	}

	return name + "." + extension
}
