package main

import (
	"fmt"
	"strings"
	"time"
)

// FormatSummaryDigest renders a short plain-text digest of the board state,
// suitable for posting to the report channel after a scheduled refresh.
func FormatSummaryDigest(data *DashboardData, now time.Time) string {
	s := data.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "Board digest: %d cards tracked\n", s.TotalCards)
	fmt.Fprintf(&b, "Queue: %d | In Progress: %d | On Hold: %d | Completed (last %d days): %d\n",
		s.QueueDepth, s.InProgress, s.OnHold, completedLookbackDays, s.RecentlyCompleted)
	if s.OverdueCount > 0 {
		fmt.Fprintf(&b, "Overdue: %d\n", s.OverdueCount)
	}

	stuck := stuckCards(data.Cards, now)
	if len(stuck) > 0 {
		fmt.Fprintf(&b, "Stuck (%d+ days without activity):\n", stuckAfterDays)
		for _, card := range stuck {
			fmt.Fprintf(&b, "- %s (%s)\n", card.Title, card.Status)
		}
	}

	loaded := overloadedMembers(data.Workloads)
	if len(loaded) > 0 {
		fmt.Fprintf(&b, "High load: %s\n", strings.Join(loaded, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// stuckCards lists non-completed cards past the stuck threshold, in payload order.
func stuckCards(cards []DashboardCard, now time.Time) []DashboardCard {
	var out []DashboardCard
	for _, card := range cards {
		if card.IsComplete {
			continue
		}
		if cardStaleness(card.LastActivity, now) == stalenessStuck {
			out = append(out, card)
		}
	}
	return out
}

func overloadedMembers(workloads []TeamMemberWorkload) []string {
	var out []string
	for _, w := range workloads {
		if capacityLevel(w.CardsTotal) == capacityHigh {
			out = append(out, fmt.Sprintf("%s (%d cards)", w.MemberName, w.CardsTotal))
		}
	}
	return out
}
