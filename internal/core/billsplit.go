package core

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BillShare is one friend's cut of a split bill.
type BillShare struct {
	Name  string
	Share Money
	Paid  bool
}

// BillSplit records an evenly split bill. Shares lists the friends
// only; the owner pays the same per-person amount but is not a share.
type BillSplit struct {
	ID          string
	Title       string
	TotalAmount Money
	Shares      []BillShare
	CreatedAt   time.Time
}

func (b BillSplit) Validate() error {
	if err := b.TotalAmount.Validate(); err != nil {
		return err
	}
	if len(b.Shares) == 0 {
		return ErrNoParticipants
	}
	for _, s := range b.Shares {
		if strings.TrimSpace(s.Name) == "" {
			return ErrNoParticipants
		}
	}
	return nil
}

// PeopleCount is everyone the bill covers, owner included.
func (b BillSplit) PeopleCount() int {
	return len(b.Shares) + 1
}

// SplitEvenly divides a total across people, rounding each share up to
// the next whole rupee so UPI amounts stay clean. The rounding means
// shares can sum to slightly more than the total; the owner absorbs
// the difference by paying the same share as everyone else.
func SplitEvenly(total Money, people int) Money {
	if total.Paise <= 0 || people <= 0 {
		return Money{}
	}
	perPersonRupees := (total.Paise + int64(people)*100 - 1) / (int64(people) * 100)
	return Money{Paise: perPersonRupees * 100}
}

// UPIPayLink builds a upi://pay deep link asking name for share, with
// the bill title as the transaction note.
func UPIPayLink(name string, share Money, note string) string {
	if note == "" {
		note = "Bill Split"
	}
	q := url.Values{}
	q.Set("pa", "")
	q.Set("pn", name)
	q.Set("am", strconv.FormatInt(share.Paise/100, 10))
	q.Set("cu", "INR")
	q.Set("tn", note)
	return "upi://pay?" + q.Encode()
}
