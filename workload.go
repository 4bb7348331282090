package main

import (
	"math"
	"sort"
)

type workloadCounts struct {
	inProgress  int
	inReview    int
	onHold      int
	completed   int
	overdue     int
	avgProgress int
}

// countWorkload applies the shared per-member counting formulas.
// "In Progress" and "Reviewing and Planning" collapse into one counter; this
// is deliberate and distinct from the bucket classifier's grouping.
// Cards without checklist items are excluded from the average, not counted as 0%.
func countWorkload(cards []DashboardCard) workloadCounts {
	var counts workloadCounts
	progressSum := 0
	progressN := 0

	for _, card := range cards {
		switch card.Status {
		case listInProgress, listPlanning:
			counts.inProgress++
		case listReview:
			counts.inReview++
		case listOnHold:
			counts.onHold++
		case listCompleted:
			counts.completed++
		}
		if card.ChecklistTotal > 0 {
			progressSum += card.ChecklistProgress
			progressN++
		}
		if card.IsOverdue {
			counts.overdue++
		}
	}

	if progressN > 0 {
		counts.avgProgress = int(math.Round(float64(progressSum) / float64(progressN)))
	}
	return counts
}

// buildWorkloads produces one entry per tracked member id, minus exclusions,
// in tracked order (order drives display and must be stable). Completed cards
// never count toward workload. Members with no active cards still get an
// all-zero entry.
func buildWorkloads(cards []DashboardCard, trackedIDs []string, memberByID map[string]TrelloMember, excludeIDs []string) []TeamMemberWorkload {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	workloads := make([]TeamMemberWorkload, 0, len(trackedIDs))
	for _, memberID := range trackedIDs {
		if excluded[memberID] {
			continue
		}

		memberName := "Unknown"
		if member, ok := memberByID[memberID]; ok {
			memberName = member.FullName
		}

		memberCards := make([]DashboardCard, 0)
		for _, card := range cards {
			if !card.IsComplete && containsID(card.AssigneeIDs, memberID) {
				memberCards = append(memberCards, card)
			}
		}

		counts := countWorkload(memberCards)
		workloads = append(workloads, TeamMemberWorkload{
			MemberID:        memberID,
			MemberName:      memberName,
			CardsInProgress: counts.inProgress,
			CardsInReview:   counts.inReview,
			CardsTotal:      len(memberCards),
			AverageProgress: counts.avgProgress,
			OverdueCards:    counts.overdue,
			Cards:           memberCards,
		})
	}
	return workloads
}

// recomputeWorkloads is the display-side variant: it reruns the same counting
// formulas against an already-filtered card set so search/member/bucket
// filters narrow the workload view without re-fetching or touching the cached
// payload. It additionally reports on-hold/completed counts and orders each
// member's cards by display rank.
func recomputeWorkloads(workloads []TeamMemberWorkload, cards []DashboardCard) []TeamMemberWorkload {
	out := make([]TeamMemberWorkload, 0, len(workloads))
	for _, w := range workloads {
		memberCards := make([]DashboardCard, 0)
		for _, card := range cards {
			if containsID(card.AssigneeIDs, w.MemberID) {
				memberCards = append(memberCards, card)
			}
		}

		counts := countWorkload(memberCards)
		sortByStatusRank(memberCards)
		out = append(out, TeamMemberWorkload{
			MemberID:        w.MemberID,
			MemberName:      w.MemberName,
			CardsInProgress: counts.inProgress,
			CardsInReview:   counts.inReview,
			CardsOnHold:     counts.onHold,
			CardsCompleted:  counts.completed,
			CardsTotal:      len(memberCards),
			AverageProgress: counts.avgProgress,
			OverdueCards:    counts.overdue,
			Cards:           memberCards,
		})
	}
	return out
}

// unassignedWorkload collects filtered cards whose assignee list contains no
// tracked member into one synthetic entry, displayed last. Returns false when
// every card is accounted for.
func unassignedWorkload(workloads []TeamMemberWorkload, cards []DashboardCard) (TeamMemberWorkload, bool) {
	tracked := make(map[string]bool, len(workloads))
	for _, w := range workloads {
		tracked[w.MemberID] = true
	}

	orphans := make([]DashboardCard, 0)
	for _, card := range cards {
		assigned := false
		for _, id := range card.AssigneeIDs {
			if tracked[id] {
				assigned = true
				break
			}
		}
		if !assigned {
			orphans = append(orphans, card)
		}
	}
	if len(orphans) == 0 {
		return TeamMemberWorkload{}, false
	}

	counts := countWorkload(orphans)
	sortByStatusRank(orphans)
	return TeamMemberWorkload{
		MemberID:        "__unassigned__",
		MemberName:      "In Queue / Unassigned",
		CardsInProgress: counts.inProgress,
		CardsInReview:   counts.inReview,
		CardsOnHold:     counts.onHold,
		CardsCompleted:  counts.completed,
		CardsTotal:      len(orphans),
		AverageProgress: counts.avgProgress,
		OverdueCards:    counts.overdue,
		Cards:           orphans,
	}, true
}

func sortByStatusRank(cards []DashboardCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		return statusRank(cards[i].Status) < statusRank(cards[j].Status)
	})
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
