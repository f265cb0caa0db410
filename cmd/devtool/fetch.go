package main

import (
	"context"
	"fmt"

	"github.com/osse101/ContentRegistry_Go/internal/content"
)

type FetchCommand struct{}

func (c *FetchCommand) Name() string {
	return "fetch"
}

func (c *FetchCommand) Description() string {
	return "Download content files: fetch <source> <dir>"
}

func (c *FetchCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: fetch <source> <dir>")
	}

	src, dst := args[0], args[1]
	PrintHeader(fmt.Sprintf("Fetching %s", src))

	if err := content.Fetch(context.Background(), src, dst); err != nil {
		return err
	}

	PrintSuccess("Content available in %s", dst)
	return nil
}
