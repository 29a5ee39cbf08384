// Command rummy-search drives the turn-search engine from the command
// line: "solve" searches one turn for a hand you describe, "bench"
// deals a seeded position and sweeps concurrent searches over clones of
// it to measure throughput.
package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build.
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Solve   SolveCmd         `cmd:"" help:"Search the best play for one described turn"`
	Bench   BenchCmd         `cmd:"" help:"Benchmark concurrent turn-searches over a dealt position"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rummy-search"),
		kong.Description("Single-turn Rummy move search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
