package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/quietloop/artstream/internal/config"
	"github.com/quietloop/artstream/internal/tui"
)

func main() {
	dbFlag := flag.String("db", "", "Art database file(s), comma-separated")
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	if *dbFlag != "" {
		for _, p := range strings.Split(*dbFlag, ",") {
			if p = strings.TrimSpace(p); p != "" {
				settings.DatabasePaths = append(settings.DatabasePaths, p)
			}
		}
	}
	settings.DatabasePaths = append(settings.DatabasePaths, flag.Args()...)

	if len(settings.DatabasePaths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: artstream-tui -db <file>[,<file>...]")
		os.Exit(1)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
