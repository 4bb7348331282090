package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// BoardFetcher is the read surface of the external board service.
type BoardFetcher interface {
	GetLists(ctx context.Context) ([]TrelloList, error)
	GetCards(ctx context.Context) ([]TrelloCard, error)
	GetMembers(ctx context.Context) ([]TrelloMember, error)
	GetLabels(ctx context.Context) ([]TrelloLabel, error)
}

// DashboardService assembles the composite payload:
// fetch -> validate -> transform -> filter -> aggregate.
type DashboardService struct {
	fetcher    BoardFetcher
	trackedIDs []string
	excludeIDs []string
	now        func() time.Time
}

func NewDashboardService(fetcher BoardFetcher, cfg Config) *DashboardService {
	return &DashboardService{
		fetcher:    fetcher,
		trackedIDs: cfg.TeamMemberIDs,
		excludeIDs: cfg.ExcludeMemberIDs,
		now:        time.Now,
	}
}

// Assemble runs one full cycle. The four board fetches fan out concurrently
// and any single failure aborts the cycle; a partial dashboard is never
// produced.
func (s *DashboardService) Assemble(ctx context.Context) (*DashboardData, error) {
	var (
		lists    []TrelloList
		rawCards []TrelloCard
		members  []TrelloMember
		labels   []TrelloLabel
	)
	errs := make([]error, 4)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); lists, errs[0] = s.fetcher.GetLists(ctx) }()
	go func() { defer wg.Done(); rawCards, errs[1] = s.fetcher.GetCards(ctx) }()
	go func() { defer wg.Done(); members, errs[2] = s.fetcher.GetMembers(ctx) }()
	go func() { defer wg.Done(); labels, errs[3] = s.fetcher.GetLabels(ctx) }()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("fetching board data: %w", err)
		}
	}

	validateListNames(lists)

	listByID := make(map[string]TrelloList, len(lists))
	for _, list := range lists {
		listByID[list.ID] = list
	}
	memberByID := make(map[string]TrelloMember, len(members))
	for _, member := range members {
		memberByID[member.ID] = member
	}
	labelByID := make(map[string]TrelloLabel, len(labels))
	for _, label := range labels {
		labelByID[label.ID] = label
	}

	now := s.now()
	cutoff := now.AddDate(0, 0, -completedLookbackDays)

	// Transform in fetch order so output order is deterministic. Cards in
	// untracked lists are invisible by design; completed cards outside the
	// lookback window vanish from the payload entirely.
	cards := make([]DashboardCard, 0, len(rawCards))
	for _, raw := range rawCards {
		card := transformCard(raw, listByID, memberByID, labelByID, now)
		if !allowedLists[card.Status] {
			continue
		}
		if card.Status == listCompleted && card.LastActivity.Before(cutoff) {
			continue
		}
		cards = append(cards, card)
	}

	summary := buildSummary(cards, now)
	workloads := buildWorkloads(cards, s.trackedIDs, memberByID, s.excludeIDs)

	return &DashboardData{
		Summary:   summary,
		Cards:     cards,
		Members:   members,
		Lists:     lists,
		Workloads: workloads,
	}, nil
}

// validateListNames warns when an expected list is missing from the board.
// Non-fatal: metrics depending on the missing list read 0 instead of the
// request failing.
func validateListNames(lists []TrelloList) {
	fetched := make(map[string]bool, len(lists))
	for _, list := range lists {
		fetched[list.Name] = true
	}
	for _, expected := range expectedListNames {
		if !fetched[expected] {
			log.Printf("expected list %q not found on board; metrics depending on it will read 0", expected)
		}
	}
}
