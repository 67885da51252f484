// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command md2html batch-converts a directory of markdown files into
// standalone, indented HTML documents. It is independent of the opage
// server; the two share nothing but the repository.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/olegiv/opage-go/internal/markdown"
)

func main() {
	inDir := flag.String("in", "markdown", "Directory with markdown source files")
	outDir := flag.String("out", "html", "Output directory (cleared and recreated on each run)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "md2html - batch markdown to HTML converter\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] [extra.md ...]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Converts every *.md file in the input directory, plus any extra\n")
		_, _ = fmt.Fprintf(os.Stderr, "files given as arguments, into the output directory.\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	if err := run(*inDir, *outDir, flag.Args()); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(inDir, outDir string, extra []string) error {
	paths, err := markdown.Paths(inDir)
	if err != nil {
		return err
	}
	paths = append(paths, extra...)

	if len(paths) == 0 {
		slog.Warn("no markdown files found", "dir", inDir)
		return nil
	}

	if err := markdown.ResetDir(outDir); err != nil {
		return err
	}

	conv := markdown.New()
	for _, path := range paths {
		outPath, err := conv.ConvertFile(path, outDir)
		if err != nil {
			return err
		}
		slog.Info("converted", "in", path, "out", outPath)
	}

	slog.Info("all markdown files converted", "count", len(paths))
	return nil
}
