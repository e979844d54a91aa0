package analytics

import "rupeerise/internal/core"

// subscriptionLike is the fixed allow-list of categories counted by the
// Chai-Samosa index.
var subscriptionLike = map[string]bool{
	"Subscriptions": true,
	"Entertainment": true,
}

// ChaiSamosaEntry is one category's spend expressed as street-food
// meals.
type ChaiSamosaEntry struct {
	Category        string
	Amount          core.Money
	MealsEquivalent int
	Icon            string
}

type ChaiSamosaIndex struct {
	Entries    []ChaiSamosaEntry
	TotalSpend core.Money
	TotalMeals int
}

// ComputeChaiSamosa converts subscription-like category spend into
// meals-equivalent at the city's street-food price. Unknown cities use
// the default price; the conversion never errors.
func ComputeChaiSamosa(cats []core.BudgetCategory, city string) ChaiSamosaIndex {
	price := core.StreetFoodPrice(city)

	var idx ChaiSamosaIndex
	for _, c := range cats {
		if !subscriptionLike[c.Name] {
			continue
		}
		meals := 0
		if price.Paise > 0 {
			meals = int(c.Spent.Paise / price.Paise)
		}
		idx.Entries = append(idx.Entries, ChaiSamosaEntry{
			Category:        c.Name,
			Amount:          c.Spent,
			MealsEquivalent: meals,
			Icon:            c.Icon,
		})
		idx.TotalSpend.Paise += c.Spent.Paise
		idx.TotalMeals += meals
	}
	return idx
}
