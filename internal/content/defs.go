package content

import "github.com/osse101/ContentRegistry_Go/internal/domain"

// Definitions mirror one JSON array element. Every field is a pointer so that
// an absent key can be told apart from a zero value; the validate tags mark
// which keys must be present.

// ItemDef holds the fields shared by every category
type ItemDef struct {
	ID          *string `json:"id" validate:"required,min=1"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Type        *string `json:"type" validate:"required"`
	Value       *int    `json:"value" validate:"required"`
	StackSize   *int    `json:"stackSize" validate:"required"`
}

// RequirementDef is one entry of a requirements array
type RequirementDef struct {
	ID     *string `json:"id" validate:"required,min=1"`
	Amount *int    `json:"amount" validate:"required"`
}

// ResourceDef is an element of resources.json
type ResourceDef struct {
	ItemDef
}

// ComponentDef is an element of components.json
type ComponentDef struct {
	ItemDef
	Requirements *[]RequirementDef `json:"requirements" validate:"required,dive"`
}

// FoodDef is an element of foods.json
type FoodDef struct {
	ItemDef
	HungerRestore *int              `json:"hungerRestore" validate:"required"`
	CookTime      *int              `json:"cookTime" validate:"required"`
	Requirements  *[]RequirementDef `json:"requirements" validate:"required,dive"`
}

// CropDef is an element of crops.json
type CropDef struct {
	ItemDef
	GrowTime *int `json:"growTime" validate:"required"`
	Yield    *int `json:"yield" validate:"required"`
}

// BuildingDef is an element of building.json
type BuildingDef struct {
	ItemDef
	Health       *int              `json:"health" validate:"required"`
	Armor        *int              `json:"armor" validate:"required"`
	Requirements *[]RequirementDef `json:"requirements" validate:"required,dive"`
}

// The conversions below run only after validation, so every pointer is set.

func (d ItemDef) item() domain.Item {
	return domain.Item{
		ID:          *d.ID,
		Name:        *d.Name,
		Description: *d.Description,
		Type:        *d.Type,
		Value:       *d.Value,
		StackSize:   *d.StackSize,
	}
}

// requirements builds the id -> amount map; a repeated id keeps its last amount.
func requirements(defs *[]RequirementDef) domain.Requirements {
	reqs := make(domain.Requirements, len(*defs))
	for _, r := range *defs {
		reqs[*r.ID] = *r.Amount
	}
	return reqs
}

func (d ResourceDef) record() domain.Resource {
	return domain.Resource{Item: d.item()}
}

func (d ComponentDef) record() domain.Component {
	return domain.Component{
		Item:         d.item(),
		Requirements: requirements(d.Requirements),
	}
}

func (d FoodDef) record() domain.Food {
	return domain.Food{
		Item:          d.item(),
		HungerRestore: *d.HungerRestore,
		CookTime:      *d.CookTime,
		Requirements:  requirements(d.Requirements),
	}
}

func (d CropDef) record() domain.Crop {
	return domain.Crop{
		Item:     d.item(),
		GrowTime: *d.GrowTime,
		Yield:    *d.Yield,
	}
}

func (d BuildingDef) record() domain.Building {
	return domain.Building{
		Item:         d.item(),
		Health:       *d.Health,
		Armor:        *d.Armor,
		Requirements: requirements(d.Requirements),
	}
}
