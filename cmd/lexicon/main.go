package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/wordsmith/lexicon/dictionary"
	"github.com/wordsmith/lexicon/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	params, err := loadParameters(args)
	if err != nil {
		return err
	}

	log, err := logger.NewRootLogger(params.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debugw("parameters loaded", "configuration", params.Loaded)

	dict := dictionary.New(dictionary.WithLogger(log))
	loadSeed(log, dict, params.SeedFile)
	defer func() { logStats(log, dict.Stats()) }()

	printBanner(dict.Count())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// reading stdin can not be interrupted, so the session is abandoned on shutdown signals
	sessionDone := make(chan error, 1)
	go func() {
		sessionDone <- newSession(dict, os.Stdin, os.Stdout, log).Run(ctx)
	}()

	select {
	case err := <-sessionDone:
		return err
	case <-ctx.Done():
		log.Infow("shutdown signal received")
		return nil
	}
}

// loadSeed fills the dictionary from the seed file. Failures are logged since the menu also works on a partially
// loaded or empty dictionary.
func loadSeed(log *logger.Logger, dict *dictionary.Dictionary, path string) {
	report, err := dict.LoadFile(path)
	switch {
	case err != nil && report.Lines == 0:
		log.Warnw("seed file could not be read, starting with an empty dictionary", "file", path, "err", err)
	case err != nil:
		log.Warnw("seed file was only partially loaded", "file", path, "lines", report.Lines, "added", report.Added, "err", err)
	case len(report.Malformed) > 0:
		log.Warnw("seed file contains malformed lines", "file", path, "lines", report.Malformed)
	}
}

// logStats reports the operations of the session.
func logStats(log *logger.Logger, stats dictionary.StatsSnapshot) {
	log.Infow("dictionary statistics",
		"lookups", stats.Lookups,
		"hits", stats.Hits(),
		"misses", stats.Misses,
		"inserts", stats.Inserts,
		"rejectedInserts", stats.RejectedInserts,
		"removals", stats.Removals,
	)
}

func printBanner(words int) {
	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Lexi", pterm.NewStyle(pterm.FgCyan)),
		putils.LettersFromStringWithStyle("con", pterm.NewStyle(pterm.FgLightMagenta)),
	).Render()

	pterm.DefaultBasicText.Println(fmt.Sprintf("%d words loaded. Press 'CTRL + c' to quit", words))
}
