package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/osse101/ContentRegistry_Go/internal/content"
	"github.com/osse101/ContentRegistry_Go/internal/domain"
)

type DumpCommand struct {
	out io.Writer
}

func (c *DumpCommand) Name() string {
	return "dump"
}

func (c *DumpCommand) Description() string {
	return "Print the loaded records of one category as JSON: dump <category> [dir]"
}

func (c *DumpCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dump <category> [dir]")
	}

	category, ok := domain.ParseCategory(args[0])
	if !ok {
		return fmt.Errorf("unknown category %q", args[0])
	}

	registry := content.New(content.WithDir(contentDirArg(args, 1)))
	if err := registry.Load(context.Background()); err != nil {
		if loadErr, failed := registry.LoadErrors()[category]; failed {
			return loadErr
		}
	}

	records := make([]domain.Record, 0, registry.Len(category))
	for _, id := range registry.IDs(category) {
		if rec, ok := registry.Lookup(category, id); ok {
			records = append(records, rec)
		}
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
