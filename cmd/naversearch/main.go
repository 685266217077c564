package main

import (
	"github.com/bornholm/naversearch/internal/command"
	"github.com/bornholm/naversearch/internal/command/search"
	"github.com/bornholm/naversearch/internal/command/serve"
	"github.com/bornholm/naversearch/internal/command/tools"
)

var version = "dev"

func main() {
	command.Main(
		"naversearch",
		version,
		"Query the Naver search APIs and expose them as LLM tools",
		search.Search(),
		tools.List(),
		serve.Serve(),
	)
}
