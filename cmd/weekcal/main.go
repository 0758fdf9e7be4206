package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/weekcal/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (default ~/.config/weekcal/config.yaml)")
	eventsPath := flag.String("events", "", "seed events from a .json or .ics file instead of the config")
	theme := flag.String("theme", "", "output theme: classic, neon or mono")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		EventsPath: *eventsPath,
		Theme:      *theme,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
