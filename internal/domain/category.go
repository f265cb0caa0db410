package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category identifies one of the content kinds. Each category is its own id namespace.
type Category int

const (
	CategoryBuilding Category = iota
	CategoryResource
	CategoryComponent
	CategoryFood
	CategoryCrop
)

var categoryNames = [...]string{
	CategoryBuilding:  "building",
	CategoryResource:  "resource",
	CategoryComponent: "component",
	CategoryFood:      "food",
	CategoryCrop:      "crop",
}

// Categories returns every category in load order.
func Categories() []Category {
	return []Category{
		CategoryBuilding,
		CategoryResource,
		CategoryComponent,
		CategoryFood,
		CategoryCrop,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c >= CategoryBuilding && c <= CategoryCrop
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// DisplayName returns the title-cased name, e.g. "Building".
func (c Category) DisplayName() string {
	return cases.Title(language.English).String(c.String())
}

// ParseCategory maps a lowercase name (singular or the plural used by the
// content file names) to its Category.
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "building", "buildings":
		return CategoryBuilding, true
	case "resource", "resources":
		return CategoryResource, true
	case "component", "components":
		return CategoryComponent, true
	case "food", "foods":
		return CategoryFood, true
	case "crop", "crops":
		return CategoryCrop, true
	}
	return 0, false
}
