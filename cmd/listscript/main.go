package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/inconshreveable/log15"
	"github.com/mgnsk/linkedlist"
	"github.com/mgnsk/linkedlist/internal/script"
)

func main() {
	file := flag.String("file", "", "path to the script file")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error, crit)")
	flag.Parse()

	lvl, err := log15.LvlFromString(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log15.New("service", "listscript")
	logger.SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, *file, os.Stdout); err != nil {
		logger.Crit("script failed", "file", *file, "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger log15.Logger, path string, w io.Writer) error {
	if path == "" {
		return fmt.Errorf("missing script file")
	}

	s, err := script.Load(path)
	if err != nil {
		return err
	}

	logger.Debug("script loaded", "file", path, "name", s.Name, "steps", len(s.Steps))

	l := linkedlist.New[string]()

	results, err := script.NewRunner(script.WithLogger(logger)).Run(ctx, l, s)
	for _, r := range results {
		fmt.Fprintln(w, r)
	}

	return err
}
