package main

import (
	"fmt"
	"os"
	"time"

	"github.com/calef/tilecanon/pkg/config"
	"github.com/calef/tilecanon/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version bool `help:"Print version information and exit." short:"v"`
	Debug   bool `help:"Whether to enable debug logging."`

	Dump struct {
		Path string `arg:"" name:"path" help:"Map source file to normalize." type:"file"`
	} `cmd:"" help:"Normalize a map source file and print the canonical map as JSON."`

	Fetch struct {
		Id      string   `arg:"" name:"id" help:"Map id to resolve against the configured roots."`
		Configs []string `arg:"" optional:"" name:"configs" help:"Configuration files." type:"file"`
	} `cmd:"" help:"Resolve a map id through the source roots and cache, then print it."`

	Config struct {
	} `cmd:"" help:"Write tilecanon's default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("tilecanon"),
		kong.Description("normalize tile-map sources into one canonical form"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf(
			"tilecanon %s (commit %s)\n",
			version.Version,
			version.GitCommit,
		)
		fmt.Printf(
			"built %s\n",
			version.BuildTime,
		)
		os.Exit(0)
	}

	switch ctx.Command() {
	case "dump <path>":
		err := dumpCommand(CLI.Dump.Path)
		if err != nil {
			writeError(err)
		}
	case "fetch <id>":
		fallthrough
	case "fetch <id> <configs>":
		err := fetchCommand(CLI.Fetch.Id, CLI.Fetch.Configs)
		if err != nil {
			writeError(err)
		}
	case "config":
		os.Stdout.Write(config.DEFAULT)
	}
}
