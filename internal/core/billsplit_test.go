package core

import (
	"errors"
	"strings"
	"testing"
)

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name      string
		total     Money
		people    int
		wantPaise int64
	}{
		{"divides exactly", Money{Paise: 120000}, 3, 40000},
		{"rounds up to whole rupee", Money{Paise: 100000}, 3, 33400},
		{"fractional total rounds up", Money{Paise: 120050}, 3, 40100},
		{"single person pays all", Money{Paise: 100000}, 1, 100000},
		{"zero total", Money{}, 3, 0},
		{"zero people", Money{Paise: 100000}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitEvenly(tt.total, tt.people)
			if got.Paise != tt.wantPaise {
				t.Errorf("SplitEvenly(%d, %d) = %d paise, want %d",
					tt.total.Paise, tt.people, got.Paise, tt.wantPaise)
			}
		})
	}
}

func TestBillSplitValidate(t *testing.T) {
	valid := BillSplit{
		Title:       "Pizza Night",
		TotalAmount: Money{Paise: 120000},
		Shares: []BillShare{
			{Name: "Asha", Share: Money{Paise: 40000}},
			{Name: "Ravi", Share: Money{Paise: 40000}},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid split rejected: %v", err)
	}
	if got := valid.PeopleCount(); got != 3 {
		t.Errorf("PeopleCount() = %d, want 3", got)
	}

	noAmount := valid
	noAmount.TotalAmount = Money{}
	if err := noAmount.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount: got %v, want ErrInvalidAmount", err)
	}

	noShares := valid
	noShares.Shares = nil
	if err := noShares.Validate(); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("no shares: got %v, want ErrNoParticipants", err)
	}

	blankName := valid
	blankName.Shares = []BillShare{{Name: "   ", Share: Money{Paise: 40000}}}
	if err := blankName.Validate(); !errors.Is(err, ErrNoParticipants) {
		t.Errorf("blank name: got %v, want ErrNoParticipants", err)
	}
}

func TestUPIPayLink(t *testing.T) {
	link := UPIPayLink("Asha", Money{Paise: 33400}, "Pizza Night")
	if !strings.HasPrefix(link, "upi://pay?") {
		t.Fatalf("link = %q, want upi://pay prefix", link)
	}
	for _, part := range []string{"am=334", "cu=INR", "pn=Asha", "tn=Pizza+Night"} {
		if !strings.Contains(link, part) {
			t.Errorf("link %q missing %q", link, part)
		}
	}

	// The note falls back when the bill has no title.
	link = UPIPayLink("Ravi", Money{Paise: 10000}, "")
	if !strings.Contains(link, "tn=Bill+Split") {
		t.Errorf("untitled link = %q, want tn=Bill+Split", link)
	}
}
