// chunker generates legal random chess positions on NxN grids for a
// memory training game, simulates game sessions, and audits positions.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chunker version %s\n", programVersion)
		os.Exit(0)
	}

	logger, err := newLogger(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, closeOut := setupOutputFile()
	defer closeOut()

	switch {
	case *checkPlacement != "":
		err = runCheck(out, *checkPlacement, *unicode)
	case *simulate > 0:
		err = runSimulate(ctx, out, cfg, logger, simulateOptions{Rounds: *simulate, Skill: *skill, Seed: *seed})
	default:
		err = runGenerate(ctx, out, cfg, logger, generateOptionsFromFlags())
	}
	if err != nil {
		closeOut()
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupOutputFile opens the output file named by -o, or returns stdout.
func setupOutputFile() (io.Writer, func()) {
	if *outputFile == "" {
		return os.Stdout, func() {}
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file, func() {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chunker [options]\n\n")
	fmt.Fprintf(os.Stderr, "Generates legal random positions on NxN grids for chess memory training.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)     Generate -n positions for -grid and -pieces\n")
	fmt.Fprintf(os.Stderr, "  -simulate R   Play up to R rounds with a simulated player of the given -skill\n")
	fmt.Fprintf(os.Stderr, "  -check S      Audit the placement string S\n")
}
