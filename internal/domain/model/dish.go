package model

import "time"

// DishChoice is one selectable variant of an option (e.g. size "L"),
// optionally carrying an extra charge.
type DishChoice struct {
	Name  string `json:"name"`
	Extra *int64 `json:"extra,omitempty"`
}

// DishOption is a named customization on a dish. Exactly one of Extra
// (flat surcharge) or Choices (per-variant surcharges) applies.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   *int64       `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

// Dish is a menu entry of a restaurant. Prices are stored in the smallest
// currency unit.
type Dish struct {
	ID           int64
	RestaurantID int64
	Name         string
	Description  string
	Price        int64
	Options      []DishOption
	CreatedAt    time.Time
}

// Option returns the catalog option with the given name, or nil.
func (d *Dish) Option(name string) *DishOption {
	for i := range d.Options {
		if d.Options[i].Name == name {
			return &d.Options[i]
		}
	}
	return nil
}

// Choice returns the option's choice with the given name, or nil.
func (o *DishOption) Choice(name string) *DishChoice {
	for i := range o.Choices {
		if o.Choices[i].Name == name {
			return &o.Choices[i]
		}
	}
	return nil
}
