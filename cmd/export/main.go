// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command export prerenders the course pages, the FAQ and the editorial
// pages from the embedded snapshot.
//
//	go run ./cmd/export -out ./dist/data
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/scable-inc/syloma/internal/content"
	"github.com/scable-inc/syloma/internal/export"
	"github.com/scable-inc/syloma/internal/platform/constants"
)

func main() {
	out := flag.String("out", "./dist/data", "output directory")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, "syloma-export"))

	store, err := content.Embedded()
	if err != nil {
		log.Error("startup_failure", slog.String("step", "load content snapshot"), slog.Any("error", err))
		os.Exit(1)
	}

	if _, err := export.New(store, log).Run(context.Background(), *out); err != nil {
		log.Error("export_failed", slog.Any("error", err))
		os.Exit(1)
	}
}
