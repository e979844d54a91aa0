package analytics

import (
	"time"

	"rupeerise/internal/core"
)

// StreakLookbackDays is the trailing window for streak evaluation.
const StreakLookbackDays = 90

type BadgeKind string

const (
	BadgeFirstStep   BadgeKind = "first_step"
	BadgeThreeDay    BadgeKind = "three_day_streak"
	BadgeWeekWarrior BadgeKind = "week_warrior"
	BadgeBudgetBoss  BadgeKind = "budget_boss"
)

// Badge is a pure predicate result. Earned is re-evaluated fresh on
// every call and never stored, so a badge can un-earn if the underlying
// condition stops holding; the presentation layer maps Kind to an icon.
type Badge struct {
	Kind        BadgeKind
	Name        string
	Description string
	Earned      bool
}

// StreakState is the full gamification snapshot for one evaluation.
type StreakState struct {
	CurrentStreak int
	LongestStreak int
	XP            int
	Level         int
	LevelProgress int // 0..99, toward the next level
	Badges        []Badge
}

// ComputeStreaks classifies each of the last 90 days (ending today,
// inclusive) as under or over the daily budget and derives streaks, XP,
// level, and badges. XP is recomputed from scratch each call so that
// corrections and deletions in the ledger never leave drift behind.
//
// With no transactions at all, every day is under budget and the
// current streak saturates at the full window, unless dailyBudget is
// itself zero or negative, in which case no day can be under budget.
func ComputeStreaks(txs []core.Transaction, dailyBudget core.Money, now time.Time) StreakState {
	daily := make(map[string]int64)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		daily[tx.Date.Format("2006-01-02")] += tx.Amount.Paise
	}

	var current, longest, run int
	currentBroken := false
	for i := 0; i < StreakLookbackDays; i++ {
		day := now.AddDate(0, 0, -i)
		spent := daily[day.Format("2006-01-02")]
		under := dailyBudget.Paise > 0 && spent <= dailyBudget.Paise

		if under {
			run++
			if !currentBroken {
				current = run
			}
		} else {
			currentBroken = true
			if run > longest {
				longest = run
			}
			run = 0
		}
	}
	if run > longest {
		longest = run
	}

	xp := current*10 + (current/7)*50 + len(txs)*2

	return StreakState{
		CurrentStreak: current,
		LongestStreak: longest,
		XP:            xp,
		Level:         xp/100 + 1,
		LevelProgress: xp % 100,
		Badges:        evaluateBadges(len(txs), longest),
	}
}

func evaluateBadges(txCount, longest int) []Badge {
	return []Badge{
		{
			Kind:        BadgeFirstStep,
			Name:        "First Step",
			Description: "Added first transaction",
			Earned:      txCount > 0,
		},
		{
			Kind:        BadgeThreeDay,
			Name:        "3-Day Streak",
			Description: "3 days under budget",
			Earned:      longest >= 3,
		},
		{
			Kind:        BadgeWeekWarrior,
			Name:        "Week Warrior",
			Description: "7-day streak achieved",
			Earned:      longest >= 7,
		},
		{
			Kind:        BadgeBudgetBoss,
			Name:        "Budget Boss",
			Description: "30-day streak master",
			Earned:      longest >= 30,
		},
	}
}
