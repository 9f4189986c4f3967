package progress

import (
	"time"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	speedDemonEntries = 10
	speedDemonWindow  = 5 * time.Minute
)

// Achievement is a milestone the learner can earn once.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	// Implemented is false for milestones that cannot be earned yet.
	Implemented bool `json:"implemented"`

	earned func(model.GameState) bool
}

// Achievements returns the milestone catalog in display order.
func Achievements() []Achievement {
	return []Achievement{
		{ID: "first-entry", Title: "First Entry", Description: "Create your first journal entry",
			Icon: "📝", Points: 10, Implemented: true, earned: firstEntry},
		{ID: "balanced-books", Title: "Balanced Books", Description: "Create a perfectly balanced journal entry",
			Icon: "⚖️", Points: 15, Implemented: true, earned: balancedBooks},
		{ID: "week-one", Title: "Week One Complete", Description: "Complete the first week of transactions",
			Icon: "🎯", Points: 25, Implemented: true, earned: completedDays(7)},
		{ID: "accuracy-master", Title: "Accuracy Master", Description: "Maintain 95% accuracy rate",
			Icon: "🎯", Points: 30, Implemented: true, earned: accuracyMaster},
		{ID: "speed-demon", Title: "Speed Demon", Description: "Complete 10 transactions in under 5 minutes",
			Icon: "⚡", Points: 20, Implemented: true, earned: speedDemon},
		{ID: "month-complete", Title: "Month Complete", Description: "Successfully complete the entire 30-day simulation",
			Icon: "🏆", Points: 100, Implemented: true, earned: completedDays(30)},
		{ID: "trial-balance-master", Title: "Trial Balance Master", Description: "Generate a perfect trial balance",
			Icon: "📊", Points: 35},
		{ID: "statement-builder", Title: "Statement Builder", Description: "Create complete financial statements",
			Icon: "📋", Points: 40},
	}
}

// Earned reports whether state satisfies the achievement's condition.
func (a Achievement) Earned(state model.GameState) bool {
	if !a.Implemented || a.earned == nil {
		return false
	}
	return a.earned(state)
}

func firstEntry(s model.GameState) bool {
	return len(s.JournalEntries) >= 1
}

func balancedBooks(s model.GameState) bool {
	for _, e := range s.JournalEntries {
		if e.IsBalanced() {
			return true
		}
	}
	return false
}

func completedDays(n int) func(model.GameState) bool {
	return func(s model.GameState) bool { return s.CompletedDays >= n }
}

func accuracyMaster(s model.GameState) bool {
	return s.Progress.AccuracyRate >= 95
}

func speedDemon(s model.GameState) bool {
	entries := s.JournalEntries
	for i := 0; i+speedDemonEntries <= len(entries); i++ {
		first, last := entries[i].PostedAt, entries[i+speedDemonEntries-1].PostedAt
		if first.IsZero() || last.IsZero() {
			continue
		}
		if last.Sub(first) < speedDemonWindow {
			return true
		}
	}
	return false
}
