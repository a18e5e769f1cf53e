// Package pricing computes order prices from a dish's option catalog and the
// selections a customer made. All functions are pure.
package pricing

import "github.com/mberkut/dishpatch/internal/domain/model"

// ItemPrice returns the dish base price plus the extras of every matched
// option selection. Selections naming an option the dish does not have
// contribute nothing; pricing never fails.
func ItemPrice(dish *model.Dish, selections []model.ItemOption) int64 {
	price := dish.Price
	for _, sel := range selections {
		opt := dish.Option(sel.Name)
		if opt == nil {
			continue
		}
		if opt.Extra != nil {
			price += *opt.Extra
			continue
		}
		if sel.Choice == nil {
			continue
		}
		if choice := opt.Choice(*sel.Choice); choice != nil && choice.Extra != nil {
			price += *choice.Extra
		}
	}
	return price
}

// OrderTotal sums the given item prices.
func OrderTotal(itemPrices []int64) int64 {
	var total int64
	for _, p := range itemPrices {
		total += p
	}
	return total
}
