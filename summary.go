package main

import "time"

// buildSummary reduces the filtered card set into board-wide counts in a
// single pass. Fully recomputed each cycle; nothing is updated incrementally.
// A card with several assignees increments each assignee's byMember counter.
func buildSummary(cards []DashboardCard, now time.Time) BoardSummary {
	byStatus := make(map[string]int)
	byMember := make(map[string]int)

	var queueDepth, inProgress, onHold, recentlyCompleted, overdueCount int
	cutoff := now.AddDate(0, 0, -completedLookbackDays)

	for _, card := range cards {
		byStatus[card.Status]++
		for _, name := range card.Assignees {
			byMember[name]++
		}

		switch card.Bucket {
		case bucketQueue:
			queueDepth++
		case bucketProgress:
			inProgress++
		case bucketOnHold:
			onHold++
		case bucketCompleted:
			if !card.LastActivity.Before(cutoff) {
				recentlyCompleted++
			}
		}

		if card.IsOverdue {
			overdueCount++
		}
	}

	return BoardSummary{
		TotalCards:        len(cards),
		ByStatus:          byStatus,
		ByMember:          byMember,
		QueueDepth:        queueDepth,
		InProgress:        inProgress,
		RecentlyCompleted: recentlyCompleted,
		OnHold:            onHold,
		OverdueCount:      overdueCount,
		LastUpdated:       now,
	}
}
