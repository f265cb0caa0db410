package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ContentRegistry_Go/internal/config"
	"github.com/osse101/ContentRegistry_Go/internal/content"
	"github.com/osse101/ContentRegistry_Go/internal/domain"
	"github.com/osse101/ContentRegistry_Go/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Content registry failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := initLogger(cfg)
	for _, w := range cfg.Warnings() {
		log.Warn("Configuration warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ContentSource != "" {
		if err := content.Fetch(ctx, cfg.ContentSource, cfg.ContentDir); err != nil {
			return err
		}
	}

	registry := content.New(
		content.WithPaths(content.Paths{
			Building:   cfg.ResolvePath(cfg.BuildingFile),
			Resources:  cfg.ResolvePath(cfg.ResourcesFile),
			Components: cfg.ResolvePath(cfg.ComponentsFile),
			Foods:      cfg.ResolvePath(cfg.FoodsFile),
			Crops:      cfg.ResolvePath(cfg.CropsFile),
		}),
		content.WithStrict(cfg.ContentStrict),
	)

	// Failed categories are already logged and left empty; keep going
	if err := registry.Load(ctx); err != nil {
		log.Warn("Content loaded with errors", "error", err)
	}

	printSamples(registry)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Info("Metrics written", "path", cfg.MetricsFile)
	}

	return nil
}

// printSamples shows one record of each category from the bundled sample content
func printSamples(r *content.Registry) {
	samples := []struct {
		category domain.Category
		id       string
	}{
		{domain.CategoryBuilding, "wall"},
		{domain.CategoryResource, "iron"},
		{domain.CategoryComponent, "glass"},
		{domain.CategoryFood, "french_fries"},
		{domain.CategoryCrop, "potato"},
	}

	for _, s := range samples {
		rec, ok := r.Lookup(s.category, s.id)
		if !ok {
			fmt.Printf("%-10s %-14s (not found)\n", s.category.DisplayName(), s.id)
			continue
		}
		fmt.Printf("%-10s %-14s %s\n", s.category.DisplayName(), s.id, rec)
	}
}
