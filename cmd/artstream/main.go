package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/quietloop/artstream/internal/config"
	"github.com/quietloop/artstream/internal/convert"
	"github.com/quietloop/artstream/internal/gallery"
	"github.com/quietloop/artstream/internal/ioutils"
	"github.com/quietloop/artstream/internal/render"
	"github.com/quietloop/artstream/internal/stream"
)

func main() {
	// Command line flags
	var (
		dbFlag       = flag.String("db", "", "Art database file(s), comma-separated")
		intervalFlag = flag.Float64("interval", 2.0, "Seconds between entries")
		configFlag   = flag.String("config", "", "Path to config file")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		helpFlag     = flag.Bool("help", false, "Print usage and exit")
		importFlag   = flag.String("import", "", "Convert an image (PNG/JPEG) to ASCII art and append it to the database")
		titleFlag    = flag.String("title", "", "Title for the imported entry (defaults to the image file name)")
		categoryFlag = flag.String("category", "imported", "Category for the imported entry")
	)

	flag.Parse()

	if *helpFlag {
		printUsage()
		os.Exit(0)
	}

	// Load config
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

	// Apply flags
	if *dbFlag != "" {
		settings.DatabasePaths = splitPaths(*dbFlag)
	}
	if flag.NArg() > 0 {
		settings.DatabasePaths = append(settings.DatabasePaths, flag.Args()...)
	}
	flagsSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagsSet[f.Name] = true })
	if flagsSet["interval"] {
		settings.IntervalSeconds = *intervalFlag
	}
	if *verboseFlag {
		settings.Verbose = true
	}

	if settings.IntervalSeconds < 0 {
		fmt.Fprintln(os.Stderr, "Error: interval must be zero or positive")
		os.Exit(1)
	}
	if len(settings.DatabasePaths) == 0 {
		printUsage()
		os.Exit(1)
	}

	// Import mode: convert one image, append it, done.
	if *importFlag != "" {
		if err := runImport(settings, *importFlag, *titleFlag, *categoryFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing image: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Load the database; a missing file is fatal before the engine runs.
	records, err := gallery.LoadFiles(ctx, settings.DatabasePaths, settings.MaxParallelLoads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading database: %v\n", err)
		os.Exit(1)
	}

	term := render.NewTerminal(os.Stdout)
	term.Banner(len(records), settings.Interval())

	engine := stream.NewEngine(records, settings.Interval(), term, func(event stream.Event) {
		if event.Level == stream.LevelVerbose && !settings.Verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case stream.LevelError:
			prefix = "❌ "
		case stream.LevelWarning:
			prefix = "⚠️  "
		case stream.LevelSuccess:
			prefix = "✅ "
		case stream.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})
	engine.StartupPause = settings.StartupPause()

	// Run blocks until the interrupt fires; an empty database returns
	// immediately after reporting it. Both are success.
	_ = engine.Run(ctx)

	if ctx.Err() != nil {
		// Leave a clean terminal: erase whatever was mid-render, then say
		// goodbye.
		term.Clear()
		term.Goodbye()
	}
}

// runImport converts an image into a record and appends it to the first
// configured database file.
func runImport(settings *config.Settings, imagePath, title, category string) error {
	if title == "" {
		base := filepath.Base(imagePath)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	conv := convert.NewConverter(settings.ImportRamp, settings.ImportWidth)
	rec, err := conv.ConvertFile(imagePath, title, category)
	if err != nil {
		return err
	}

	target := settings.DatabasePaths[0]
	if err := ioutils.AppendFile(target, []byte(convert.Encode(rec))); err != nil {
		return err
	}

	fmt.Printf("Imported %s into %s as %s\n", imagePath, target, rec)
	return nil
}

func splitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func printUsage() {
	fmt.Println("artstream - stream random ASCII art to your terminal")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  artstream -db <file>[,<file>...] [options]")
	fmt.Println("  artstream <file> [options]")
	fmt.Println()
	fmt.Println("For interactive mode, use: artstream-tui")
	fmt.Println()
	flag.PrintDefaults()
}
