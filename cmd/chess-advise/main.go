// chess-advise suggests a move for every saved game named on the command
// line. Games are searched in parallel, one worker per game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

const programVersion = "0.1.0"

var (
	depth     = flag.Int("depth", 0, "Search depth 1-5 (default: the difficulty stored in each file)")
	workers   = flag.Int("workers", config.NewBatchConfig().Workers, "Number of games searched in parallel")
	verbosity = flag.Int("verbose", 0, "Log verbosity: 0 = off, 1 = info, 2 = debug")
	jsonLogs  = flag.Bool("jsonlogs", false, "Write log records as JSON")
	jsonOut   = flag.Bool("json", false, "Write results as a JSON array")
	jsonLines = flag.Bool("jsonl", false, "Write results as one JSON object per line")
	noCache   = flag.Bool("nocache", false, "Search every file even when positions repeat")
	version   = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("chess-advise version %s\n", programVersion)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg := config.NewConfigBuilder().
		WithDepth(*depth).
		WithWorkers(*workers).
		WithVerbosity(*verbosity).
		WithJSONLogs(*jsonLogs).
		WithLogFile(os.Stderr).
		Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := cfg.Logger()
	var opts []worker.AdvisorOption
	cache := hashing.NewThreadSafePositionCache(0)
	if !*noCache {
		opts = append(opts, worker.WithCache(cache))
	}

	results := worker.Run(flag.Args(), cfg.Batch.Workers, worker.Advisor(cfg.Batch.Depth, logger, opts...))
	logger.Info().Int("games", len(results)).Int("positions", cache.Len()).Int("cache_hits", cache.Hits()).Msg("done")
	failed, err := output.WriteAll(output.NewWriter(os.Stdout, outputFormat()), results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// outputFormat selects the result format from the flags.
func outputFormat() output.Format {
	switch {
	case *jsonLines:
		return output.FormatJSONLines
	case *jsonOut:
		return output.FormatJSON
	}
	return output.FormatText
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-advise [options] savefile...\n\n")
	fmt.Fprintf(os.Stderr, "Suggest the next move for each saved game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
