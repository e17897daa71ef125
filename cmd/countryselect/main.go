package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/goliatone/go-countryselect/cmd/countryselect/commands"
)

var version = "dev"

func main() {
	cli := &commands.CLI{Out: os.Stdout, Err: os.Stderr}
	ctx := kong.Parse(cli,
		kong.Name("countryselect"),
		kong.Description("Country catalog, value normalizer and field renderer."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	ctx.FatalIfErrorf(ctx.Run())
}
