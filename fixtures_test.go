package main

import "time"

// Fixed instant for deterministic overdue/lookback evaluation in tests.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) time.Time {
	return testNow.AddDate(0, 0, -days)
}

var testLists = []TrelloList{
	{ID: "list-queue", Name: listQueue, Pos: 1},
	{ID: "list-new", Name: listNewProjectQueue, Pos: 2},
	{ID: "list-planning", Name: listPlanning, Pos: 3},
	{ID: "list-progress", Name: listInProgress, Pos: 4},
	{ID: "list-review", Name: listReview, Pos: 5},
	{ID: "list-completed", Name: listCompleted, Pos: 6},
	{ID: "list-hold", Name: listOnHold, Pos: 7},
}

var testMembers = []TrelloMember{
	{ID: "member-daniel", FullName: "Daniel", Username: "daniel"},
	{ID: "member-nathan", FullName: "Nathan", Username: "nathan"},
	{ID: "member-randall", FullName: "Randall", Username: "randall"},
}

var testLabels = []TrelloLabel{
	{ID: "label-urgent", Name: "Urgent", Color: "red"},
	{ID: "label-data", Name: "Data Request", Color: "blue"},
}

func lookupTables() (map[string]TrelloList, map[string]TrelloMember, map[string]TrelloLabel) {
	listByID := make(map[string]TrelloList, len(testLists))
	for _, l := range testLists {
		listByID[l.ID] = l
	}
	memberByID := make(map[string]TrelloMember, len(testMembers))
	for _, m := range testMembers {
		memberByID[m.ID] = m
	}
	labelByID := make(map[string]TrelloLabel, len(testLabels))
	for _, l := range testLabels {
		labelByID[l.ID] = l
	}
	return listByID, memberByID, labelByID
}

// makeRawCard returns a raw card in "In Progress" assigned to Daniel;
// mutate adjusts individual fields per test.
func makeRawCard(mutate func(*TrelloCard)) TrelloCard {
	card := TrelloCard{
		ID:               "card-1",
		Name:             "Test Card",
		Desc:             "A test card description",
		IDList:           "list-progress",
		IDMembers:        []string{"member-daniel"},
		IDLabels:         []string{"label-urgent"},
		DueComplete:      false,
		DateLastActivity: testNow,
		ShortURL:         "https://trello.com/c/abc123",
	}
	if mutate != nil {
		mutate(&card)
	}
	return card
}

func makeChecklist(name string, states ...string) TrelloChecklist {
	cl := TrelloChecklist{ID: "cl-" + name, Name: name}
	for i, state := range states {
		cl.CheckItems = append(cl.CheckItems, TrelloCheckItem{
			ID:    "ci-" + name + string(rune('a'+i)),
			Name:  "item",
			State: state,
		})
	}
	return cl
}

// makeDashCard returns a normalized card for aggregator and filter tests.
func makeDashCard(mutate func(*DashboardCard)) DashboardCard {
	card := DashboardCard{
		ID:           "card-1",
		Title:        "Monthly Report Update",
		Description:  "Update the monthly report",
		Status:       listInProgress,
		Bucket:       bucketProgress,
		StatusOrder:  4,
		Assignees:    []string{"Daniel"},
		AssigneeIDs:  []string{"member-daniel"},
		Labels:       []DashboardLabel{{Name: "Urgent", Color: "red"}},
		LastActivity: testNow,
	}
	if mutate != nil {
		mutate(&card)
	}
	return card
}
