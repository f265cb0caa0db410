package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/osse101/ContentRegistry_Go/internal/content"
	"github.com/osse101/ContentRegistry_Go/internal/domain"
	"github.com/osse101/ContentRegistry_Go/internal/validation"
)

type ValidateCommand struct{}

func (c *ValidateCommand) Name() string {
	return "validate"
}

func (c *ValidateCommand) Description() string {
	return "Check content files against their schemas: validate [dir]"
}

func (c *ValidateCommand) Run(args []string) error {
	dir := contentDirArg(args, 0)
	PrintHeader(fmt.Sprintf("Validating content in %s", dir))

	validator, err := validation.NewSchemaValidator()
	if err != nil {
		return fmt.Errorf("failed to create schema validator: %w", err)
	}

	paths := content.DefaultPaths(dir)
	failed := 0

	for _, category := range domain.Categories() {
		if err := c.validateFile(validator, paths.For(category), category); err != nil {
			PrintError("%s: %v", category.DisplayName(), err)
			failed++
			continue
		}
		PrintSuccess("%s: %s", category.DisplayName(), paths.For(category))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d content files failed validation", failed, len(domain.Categories()))
	}

	PrintSuccess("All content files valid")
	return nil
}

func (c *ValidateCommand) validateFile(v validation.SchemaValidator, path string, category domain.Category) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s not found", path)
		}
		return err
	}

	if err := v.ValidateBytes(data, category); err != nil {
		return err
	}

	dupes, err := validation.DuplicateIDs(data)
	if err != nil {
		return err
	}
	if len(dupes) > 0 {
		PrintWarning("%s: duplicate ids %v, the last entry of each wins", category.DisplayName(), dupes)
	}
	return nil
}
