package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Item holds the fields every content entry carries, whatever its category.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"` // Free-form tag, not the category
	Value       int    `json:"value"`
	StackSize   int    `json:"stackSize"`
}

// Requirements maps an item id to the amount of that item needed to build
// or produce the owning record. Ids are not checked against any category.
type Requirements map[string]int

// Clone returns an independent copy. A nil receiver yields an empty map.
func (r Requirements) Clone() Requirements {
	out := make(Requirements, len(r))
	maps.Copy(out, r)
	return out
}

// String renders the requirements sorted by id, e.g. "{iron:3 wood:2}".
func (r Requirements) String() string {
	ids := slices.Sorted(maps.Keys(r))
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%s:%d", id, r[id]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Record is a loaded content entry. The set of implementations is closed:
// Resource, Component, Food, Crop and Building.
type Record interface {
	Base() Item
	Category() Category
	isRecord()
}

// Resource is a raw material with no fields beyond Item.
type Resource struct {
	Item
}

// Component is an intermediate good crafted from other items.
type Component struct {
	Item
	Requirements Requirements `json:"requirements"`
}

// Food restores hunger and may need ingredients and cooking time.
type Food struct {
	Item
	HungerRestore int          `json:"hungerRestore"`
	CookTime      int          `json:"cookTime"`
	Requirements  Requirements `json:"requirements"`
}

// Crop is planted and harvested.
type Crop struct {
	Item
	GrowTime int `json:"growTime"`
	Yield    int `json:"yield"`
}

// Building is a placeable structure.
type Building struct {
	Item
	Health       int          `json:"health"`
	Armor        int          `json:"armor"`
	Requirements Requirements `json:"requirements"`
}

func (r Resource) Base() Item  { return r.Item }
func (c Component) Base() Item { return c.Item }
func (f Food) Base() Item      { return f.Item }
func (c Crop) Base() Item      { return c.Item }
func (b Building) Base() Item  { return b.Item }

func (Resource) Category() Category  { return CategoryResource }
func (Component) Category() Category { return CategoryComponent }
func (Food) Category() Category      { return CategoryFood }
func (Crop) Category() Category      { return CategoryCrop }
func (Building) Category() Category  { return CategoryBuilding }

func (Resource) isRecord()  {}
func (Component) isRecord() {}
func (Food) isRecord()      {}
func (Crop) isRecord()      {}
func (Building) isRecord()  {}

// Clone returns a copy that shares no mutable state with c.
func (c Component) Clone() Component {
	c.Requirements = c.Requirements.Clone()
	return c
}

// Clone returns a copy that shares no mutable state with f.
func (f Food) Clone() Food {
	f.Requirements = f.Requirements.Clone()
	return f
}

// Clone returns a copy that shares no mutable state with b.
func (b Building) Clone() Building {
	b.Requirements = b.Requirements.Clone()
	return b
}

func (i Item) fields() string {
	return fmt.Sprintf("id=%q name=%q description=%q type=%q value=%d stackSize=%d",
		i.ID, i.Name, i.Description, i.Type, i.Value, i.StackSize)
}

func (r Resource) String() string {
	return fmt.Sprintf("Resource{%s}", r.fields())
}

func (c Component) String() string {
	return fmt.Sprintf("Component{%s requirements=%s}", c.fields(), c.Requirements)
}

func (f Food) String() string {
	return fmt.Sprintf("Food{%s hungerRestore=%d cookTime=%d requirements=%s}",
		f.fields(), f.HungerRestore, f.CookTime, f.Requirements)
}

func (c Crop) String() string {
	return fmt.Sprintf("Crop{%s growTime=%d yield=%d}", c.fields(), c.GrowTime, c.Yield)
}

func (b Building) String() string {
	return fmt.Sprintf("Building{%s health=%d armor=%d requirements=%s}",
		b.fields(), b.Health, b.Armor, b.Requirements)
}
