package main

import (
	"context"
	"io"

	"github.com/fwojciec/dsmeta"
	"github.com/fwojciec/dsmeta/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Metadata dsmeta.MetadataService
	History  dsmeta.ExtractionHistory
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract dataset metadata from a URL"`
	History HistoryCmd `cmd:"" help:"Show recent extraction runs"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL            string `arg:"" help:"Dataset page URL"`
	License        bool   `help:"Extract license metadata only"`
	Place          bool   `help:"Extract place metadata only"`
	Temporal       bool   `help:"Extract temporal metadata only"`
	MaxFollowLinks int    `short:"n" default:"3" help:"How many license-like links to follow (0 = main page only)"`
	Browser        bool   `short:"b" help:"Render pages in a headless browser instead of plain HTTP"`
	JSON           bool   `short:"j" help:"Print the full result as JSON"`
	Verbose        bool   `short:"v" help:"Log fetch and extraction calls to stderr"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"How many runs to show"`
}
