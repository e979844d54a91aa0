package analytics

import (
	"testing"

	"rupeerise/internal/core"
)

func TestComputeChaiSamosa(t *testing.T) {
	cats := []core.BudgetCategory{
		{Name: "Subscriptions", Icon: "📺", Spent: core.Money{Paise: 120000}},
		{Name: "Entertainment", Icon: "🎬", Spent: core.Money{Paise: 45000}},
		{Name: "Food & Dining", Spent: core.Money{Paise: 900000}},
	}

	t.Run("counts only subscription-like categories", func(t *testing.T) {
		// Delhi street food at 6000 paise a plate.
		idx := ComputeChaiSamosa(cats, "Delhi")
		if len(idx.Entries) != 2 {
			t.Fatalf("len(Entries) = %d, want 2", len(idx.Entries))
		}
		if idx.Entries[0].MealsEquivalent != 20 {
			t.Errorf("Subscriptions meals = %d, want 20 (120000/6000)", idx.Entries[0].MealsEquivalent)
		}
		if idx.Entries[1].MealsEquivalent != 7 {
			t.Errorf("Entertainment meals = %d, want 7 (45000/6000 floored)", idx.Entries[1].MealsEquivalent)
		}
		if idx.TotalSpend.Paise != 165000 {
			t.Errorf("TotalSpend = %d, want 165000", idx.TotalSpend.Paise)
		}
		if idx.TotalMeals != 27 {
			t.Errorf("TotalMeals = %d, want 27", idx.TotalMeals)
		}
	})

	t.Run("city prices change the conversion", func(t *testing.T) {
		// Mumbai at 8000 paise a plate.
		idx := ComputeChaiSamosa(cats, "Mumbai")
		if idx.Entries[0].MealsEquivalent != 15 {
			t.Errorf("Subscriptions meals = %d, want 15 (120000/8000)", idx.Entries[0].MealsEquivalent)
		}
	})

	t.Run("unknown city falls back to the default price", func(t *testing.T) {
		got := ComputeChaiSamosa(cats, "Atlantis")
		want := ComputeChaiSamosa(cats, "Delhi")
		if got.TotalMeals != want.TotalMeals {
			t.Errorf("TotalMeals = %d, want %d (default price)", got.TotalMeals, want.TotalMeals)
		}
	})

	t.Run("no matching categories yields an empty index", func(t *testing.T) {
		idx := ComputeChaiSamosa([]core.BudgetCategory{{Name: "Transport", Spent: core.Money{Paise: 50000}}}, "Delhi")
		if len(idx.Entries) != 0 || idx.TotalSpend.Paise != 0 || idx.TotalMeals != 0 {
			t.Errorf("index = %+v, want empty", idx)
		}
	})
}
