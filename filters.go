package main

import "strings"

// FilterState is the externally-owned filter selection (search text, member
// id, bucket key). The zero value matches every card.
type FilterState struct {
	Search string
	Member string
	Bucket string
}

func (f FilterState) IsZero() bool {
	return f.Search == "" && f.Member == "" && f.Bucket == ""
}

// Matches reports whether a card passes all active criteria. Conjunctive:
// an empty criterion is vacuously true. Search is a case-insensitive
// substring match on the title; member is an exact assignee-id test; bucket
// is exact equality on the bucket key.
func (f FilterState) Matches(card DashboardCard) bool {
	if f.Search != "" {
		if !strings.Contains(strings.ToLower(card.Title), strings.ToLower(f.Search)) {
			return false
		}
	}
	if f.Member != "" && !containsID(card.AssigneeIDs, f.Member) {
		return false
	}
	if f.Bucket != "" && card.Bucket != f.Bucket {
		return false
	}
	return true
}

func filterCards(cards []DashboardCard, f FilterState) []DashboardCard {
	out := make([]DashboardCard, 0, len(cards))
	for _, card := range cards {
		if f.Matches(card) {
			out = append(out, card)
		}
	}
	return out
}

// applyFilters narrows a cached payload for one response without mutating it:
// cards are filtered by the predicate and workloads are recomputed
// display-side against the narrowed set, with unassigned cards collected
// into a trailing synthetic entry.
func applyFilters(data *DashboardData, f FilterState) *DashboardData {
	cards := filterCards(data.Cards, f)
	workloads := recomputeWorkloads(data.Workloads, cards)
	if w, ok := unassignedWorkload(data.Workloads, cards); ok {
		workloads = append(workloads, w)
	}
	return &DashboardData{
		Summary:   data.Summary,
		Cards:     cards,
		Members:   data.Members,
		Lists:     data.Lists,
		Workloads: workloads,
	}
}
