package content

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/osse101/ContentRegistry_Go/internal/domain"
	"github.com/osse101/ContentRegistry_Go/internal/logger"
	"github.com/osse101/ContentRegistry_Go/internal/metrics"
)

// Paths holds the source file of each category
type Paths struct {
	Building   string
	Resources  string
	Components string
	Foods      string
	Crops      string
}

// DefaultPaths returns the standard file names inside dir
func DefaultPaths(dir string) Paths {
	return Paths{
		Building:   filepath.Join(dir, BuildingFileName),
		Resources:  filepath.Join(dir, ResourcesFileName),
		Components: filepath.Join(dir, ComponentsFileName),
		Foods:      filepath.Join(dir, FoodsFileName),
		Crops:      filepath.Join(dir, CropsFileName),
	}
}

// For returns the file a category is loaded from
func (p Paths) For(category domain.Category) string {
	switch category {
	case domain.CategoryBuilding:
		return p.Building
	case domain.CategoryResource:
		return p.Resources
	case domain.CategoryComponent:
		return p.Components
	case domain.CategoryFood:
		return p.Foods
	case domain.CategoryCrop:
		return p.Crops
	}
	return ""
}

// Option configures a Registry
type Option func(*Registry)

// WithDir loads the standard file names from dir
func WithDir(dir string) Option {
	return func(r *Registry) {
		r.paths = DefaultPaths(dir)
	}
}

// WithPaths sets every category file explicitly
func WithPaths(paths Paths) Option {
	return func(r *Registry) {
		r.paths = paths
	}
}

// WithStrict makes a single malformed element (or unknown field) fail its
// whole category instead of being skipped
func WithStrict(strict bool) Option {
	return func(r *Registry) {
		r.strict = strict
	}
}

// Registry holds every content category, loaded once and read-only afterwards.
// Lookups are safe for concurrent use.
type Registry struct {
	paths  Paths
	strict bool

	once    sync.Once
	loadErr error
	errs    map[domain.Category]error

	buildings  map[string]domain.Building
	resources  map[string]domain.Resource
	components map[string]domain.Component
	foods      map[string]domain.Food
	crops      map[string]domain.Crop
}

// New creates an unloaded registry. Without options it reads the standard
// file names from the working directory.
func New(opts ...Option) *Registry {
	r := &Registry{paths: DefaultPaths(".")}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry over the working directory,
// creating it on first call. Prefer New and passing the registry explicitly.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Load reads every category file. Only the first call does any work; later
// calls return the same result. A failed category is logged and left empty
// without stopping the others, so the registry is usable even when Load
// returns an error describing the failures.
func (r *Registry) Load(ctx context.Context) error {
	r.once.Do(func() {
		r.loadErr = r.load(ctx)
	})
	return r.loadErr
}

func (r *Registry) ensureLoaded() {
	_ = r.Load(context.Background())
}

func (r *Registry) load(ctx context.Context) error {
	if _, ok := logger.LoadIDFromContext(ctx); !ok {
		ctx = logger.WithLoadID(ctx, logger.GenerateLoadID())
	}
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegistryLoading, "strict", r.strict)

	l := newLoader(r.strict)
	r.errs = make(map[domain.Category]error)

	r.buildings = loadInto(ctx, r, domain.CategoryBuilding, parser[BuildingDef, domain.Building](l))
	r.resources = loadInto(ctx, r, domain.CategoryResource, parser[ResourceDef, domain.Resource](l))
	r.components = loadInto(ctx, r, domain.CategoryComponent, parser[ComponentDef, domain.Component](l))
	r.foods = loadInto(ctx, r, domain.CategoryFood, parser[FoodDef, domain.Food](l))
	r.crops = loadInto(ctx, r, domain.CategoryCrop, parser[CropDef, domain.Crop](l))

	log.Info(LogMsgRegistryLoaded,
		"buildings", len(r.buildings),
		"resources", len(r.resources),
		"components", len(r.components),
		"foods", len(r.foods),
		"crops", len(r.crops),
		"failed_categories", len(r.errs))

	var errs []error
	for _, category := range domain.Categories() {
		if err, ok := r.errs[category]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", category, err))
		}
	}
	return errors.Join(errs...)
}

// loadInto loads one category, recording and logging a failure instead of
// returning it. The result is never nil.
func loadInto[T domain.Record](ctx context.Context, r *Registry, category domain.Category, parse parseFunc[T]) map[string]T {
	log := logger.FromContext(ctx)
	path := r.paths.For(category)
	start := time.Now()

	records, skipped, err := loadCategory(ctx, category, path, parse, r.strict)
	metrics.CategoryLoadDuration.WithLabelValues(category.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		r.errs[category] = err
		metrics.LoadFailures.WithLabelValues(category.String(), failureReason(err)).Inc()
		metrics.RecordsLoaded.WithLabelValues(category.String()).Set(0)
		log.Error(LogMsgCategoryFailed, "category", category.String(), "path", path, "error", err)
		return map[string]T{}
	}

	metrics.RecordsLoaded.WithLabelValues(category.String()).Set(float64(len(records)))
	log.Info(LogMsgCategoryLoaded,
		"category", category.String(),
		"path", path,
		"records", len(records),
		"skipped", skipped,
		"duration", time.Since(start))

	return records
}

func lookup[T domain.Record](category domain.Category, records map[string]T, id string) (T, bool) {
	rec, ok := records[id]
	metrics.Lookups.WithLabelValues(category.String(), metrics.LookupResult(ok)).Inc()
	return rec, ok
}

// GetBuilding returns the building with the given id, loading the registry on first use
func (r *Registry) GetBuilding(id string) (domain.Building, bool) {
	r.ensureLoaded()
	b, ok := lookup(domain.CategoryBuilding, r.buildings, id)
	if !ok {
		return domain.Building{}, false
	}
	return b.Clone(), true
}

// GetResource returns the resource with the given id, loading the registry on first use
func (r *Registry) GetResource(id string) (domain.Resource, bool) {
	r.ensureLoaded()
	return lookup(domain.CategoryResource, r.resources, id)
}

// GetComponent returns the component with the given id, loading the registry on first use
func (r *Registry) GetComponent(id string) (domain.Component, bool) {
	r.ensureLoaded()
	c, ok := lookup(domain.CategoryComponent, r.components, id)
	if !ok {
		return domain.Component{}, false
	}
	return c.Clone(), true
}

// GetFood returns the food with the given id, loading the registry on first use
func (r *Registry) GetFood(id string) (domain.Food, bool) {
	r.ensureLoaded()
	f, ok := lookup(domain.CategoryFood, r.foods, id)
	if !ok {
		return domain.Food{}, false
	}
	return f.Clone(), true
}

// GetCrop returns the crop with the given id, loading the registry on first use
func (r *Registry) GetCrop(id string) (domain.Crop, bool) {
	r.ensureLoaded()
	return lookup(domain.CategoryCrop, r.crops, id)
}

// Lookup finds a record by category and id. Unknown categories report not found.
func (r *Registry) Lookup(category domain.Category, id string) (domain.Record, bool) {
	var (
		rec domain.Record
		ok  bool
	)

	switch category {
	case domain.CategoryBuilding:
		rec, ok = r.GetBuilding(id)
	case domain.CategoryResource:
		rec, ok = r.GetResource(id)
	case domain.CategoryComponent:
		rec, ok = r.GetComponent(id)
	case domain.CategoryFood:
		rec, ok = r.GetFood(id)
	case domain.CategoryCrop:
		rec, ok = r.GetCrop(id)
	}

	if !ok {
		return nil, false
	}
	return rec, true
}

// IDs returns the sorted ids held for a category
func (r *Registry) IDs(category domain.Category) []string {
	r.ensureLoaded()

	switch category {
	case domain.CategoryBuilding:
		return slices.Sorted(maps.Keys(r.buildings))
	case domain.CategoryResource:
		return slices.Sorted(maps.Keys(r.resources))
	case domain.CategoryComponent:
		return slices.Sorted(maps.Keys(r.components))
	case domain.CategoryFood:
		return slices.Sorted(maps.Keys(r.foods))
	case domain.CategoryCrop:
		return slices.Sorted(maps.Keys(r.crops))
	}
	return nil
}

// Len returns the number of records held for a category
func (r *Registry) Len(category domain.Category) int {
	r.ensureLoaded()

	switch category {
	case domain.CategoryBuilding:
		return len(r.buildings)
	case domain.CategoryResource:
		return len(r.resources)
	case domain.CategoryComponent:
		return len(r.components)
	case domain.CategoryFood:
		return len(r.foods)
	case domain.CategoryCrop:
		return len(r.crops)
	}
	return 0
}

// LoadErrors returns the error of each category that failed to load
func (r *Registry) LoadErrors() map[domain.Category]error {
	r.ensureLoaded()
	return maps.Clone(r.errs)
}
