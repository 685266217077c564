package tools

import (
	"io"
	"os"

	"github.com/bornholm/naversearch/pkg/search/naver"
	"github.com/bornholm/naversearch/pkg/tool"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"
)

type toolInfo struct {
	tool.Definition `yaml:",inline"`
	Endpoint        string `yaml:"endpoint"`
}

func List() *cli.Command {
	return &cli.Command{
		Name:  "tools",
		Usage: "List the available Naver search tools",
		Action: func(cliCtx *cli.Context) error {
			return WriteDefinitions(os.Stdout, tool.Definitions())
		},
	}
}

// WriteDefinitions writes the tool definitions, with their API endpoint, as
// YAML.
func WriteDefinitions(w io.Writer, definitions []tool.Definition) error {
	infos := make([]toolInfo, 0, len(definitions))

	for _, d := range definitions {
		endpoint, err := naver.NewClient().EndpointURL(d.SearchType)
		if err != nil {
			return errors.Wrapf(err, "invalid definition '%s'", d.Name)
		}

		infos = append(infos, toolInfo{
			Definition: d,
			Endpoint:   endpoint,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(infos); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(encoder.Close())
}
