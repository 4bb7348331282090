package main

import (
	"reflect"
	"testing"
	"time"
)

func TestTransformCardFullCard(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	card := makeRawCard(func(c *TrelloCard) {
		c.Checklists = []TrelloChecklist{
			makeChecklist("Setup Tasks", "complete", "incomplete", "complete"),
		}
	})

	result := transformCard(card, listByID, memberByID, labelByID, testNow)

	if result.ID != "card-1" {
		t.Errorf("ID = %q, want %q", result.ID, "card-1")
	}
	if result.Title != "Test Card" {
		t.Errorf("Title = %q, want %q", result.Title, "Test Card")
	}
	if result.Description != "A test card description" {
		t.Errorf("Description = %q", result.Description)
	}
	if result.Status != listInProgress {
		t.Errorf("Status = %q, want %q", result.Status, listInProgress)
	}
	if result.Bucket != bucketProgress {
		t.Errorf("Bucket = %q, want %q", result.Bucket, bucketProgress)
	}
	if result.StatusOrder != 4 {
		t.Errorf("StatusOrder = %v, want 4", result.StatusOrder)
	}
	if !reflect.DeepEqual(result.Assignees, []string{"Daniel"}) {
		t.Errorf("Assignees = %v", result.Assignees)
	}
	if !reflect.DeepEqual(result.AssigneeIDs, []string{"member-daniel"}) {
		t.Errorf("AssigneeIDs = %v", result.AssigneeIDs)
	}
	if !reflect.DeepEqual(result.Labels, []DashboardLabel{{Name: "Urgent", Color: "red"}}) {
		t.Errorf("Labels = %v", result.Labels)
	}
	if result.TrelloURL != "https://trello.com/c/abc123" {
		t.Errorf("TrelloURL = %q", result.TrelloURL)
	}
	if result.ChecklistProgress != 67 {
		t.Errorf("ChecklistProgress = %d, want 67", result.ChecklistProgress)
	}
	if result.ChecklistTotal != 3 {
		t.Errorf("ChecklistTotal = %d, want 3", result.ChecklistTotal)
	}
	if result.ChecklistCompleted != 2 {
		t.Errorf("ChecklistCompleted = %d, want 2", result.ChecklistCompleted)
	}
	if len(result.Checklists) != 1 {
		t.Fatalf("Checklists length = %d, want 1", len(result.Checklists))
	}
	if result.Checklists[0].Completed != 2 || result.Checklists[0].Total != 3 {
		t.Errorf("Checklists[0] = %d/%d, want 2/3", result.Checklists[0].Completed, result.Checklists[0].Total)
	}
	if result.IsComplete {
		t.Error("IsComplete = true, want false")
	}
	if result.IsOverdue {
		t.Error("IsOverdue = true, want false")
	}
}

func TestTransformCardChecklistRounding(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()

	tests := []struct {
		name         string
		states       []string
		wantProgress int
	}{
		{"two thirds rounds up", []string{"complete", "complete", "incomplete"}, 67},
		{"exact half", []string{"complete", "incomplete"}, 50},
		{"one eighth rounds half away from zero", []string{"complete", "incomplete", "incomplete", "incomplete", "incomplete", "incomplete", "incomplete", "incomplete"}, 13},
		{"none complete", []string{"incomplete", "incomplete"}, 0},
		{"all complete", []string{"complete", "complete"}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := makeRawCard(func(c *TrelloCard) {
				c.Checklists = []TrelloChecklist{makeChecklist("cl", tt.states...)}
			})
			result := transformCard(card, listByID, memberByID, labelByID, testNow)
			if result.ChecklistProgress != tt.wantProgress {
				t.Errorf("ChecklistProgress = %d, want %d", result.ChecklistProgress, tt.wantProgress)
			}
			if result.ChecklistProgress < 0 || result.ChecklistProgress > 100 {
				t.Errorf("ChecklistProgress = %d outside [0,100]", result.ChecklistProgress)
			}
		})
	}
}

func TestTransformCardChecklistsSumAcrossGroups(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	card := makeRawCard(func(c *TrelloCard) {
		c.Checklists = []TrelloChecklist{
			makeChecklist("first", "complete", "complete"),
			makeChecklist("second", "incomplete", "incomplete"),
		}
	})

	result := transformCard(card, listByID, memberByID, labelByID, testNow)

	if result.ChecklistTotal != 4 || result.ChecklistCompleted != 2 {
		t.Errorf("rollup = %d/%d, want 2/4", result.ChecklistCompleted, result.ChecklistTotal)
	}
	if result.ChecklistProgress != 50 {
		t.Errorf("ChecklistProgress = %d, want 50", result.ChecklistProgress)
	}
}

func TestTransformCardNoChecklists(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	result := transformCard(makeRawCard(nil), listByID, memberByID, labelByID, testNow)

	if result.ChecklistProgress != 0 {
		t.Errorf("ChecklistProgress = %d, want 0", result.ChecklistProgress)
	}
	if result.ChecklistTotal != 0 || result.ChecklistCompleted != 0 {
		t.Errorf("rollup = %d/%d, want 0/0", result.ChecklistCompleted, result.ChecklistTotal)
	}
	if len(result.Checklists) != 0 {
		t.Errorf("Checklists length = %d, want 0", len(result.Checklists))
	}
}

func TestTransformCardOverdue(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	pastDue := testNow.Add(-24 * time.Hour)
	futureDue := testNow.Add(24 * time.Hour)

	tests := []struct {
		name        string
		due         *time.Time
		dueComplete bool
		want        bool
	}{
		{"past due incomplete", &pastDue, false, true},
		{"past due already done", &pastDue, true, false},
		{"future due", &futureDue, false, false},
		{"no due date", nil, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := makeRawCard(func(c *TrelloCard) {
				c.Due = tt.due
				c.DueComplete = tt.dueComplete
			})
			result := transformCard(card, listByID, memberByID, labelByID, testNow)
			if result.IsOverdue != tt.want {
				t.Errorf("IsOverdue = %v, want %v", result.IsOverdue, tt.want)
			}
		})
	}
}

func TestTransformCardMissingMemberDropped(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	card := makeRawCard(func(c *TrelloCard) {
		c.IDMembers = []string{"member-daniel", "member-gone"}
	})

	result := transformCard(card, listByID, memberByID, labelByID, testNow)

	if !reflect.DeepEqual(result.Assignees, []string{"Daniel"}) {
		t.Errorf("Assignees = %v, want only Daniel", result.Assignees)
	}
	if !reflect.DeepEqual(result.AssigneeIDs, []string{"member-daniel", "member-gone"}) {
		t.Errorf("AssigneeIDs = %v, dangling id should be kept", result.AssigneeIDs)
	}
}

func TestTransformCardMissingLabelDropped(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	card := makeRawCard(func(c *TrelloCard) {
		c.IDLabels = []string{"label-urgent", "label-gone"}
	})

	result := transformCard(card, listByID, memberByID, labelByID, testNow)

	if len(result.Labels) != 1 || result.Labels[0].Name != "Urgent" {
		t.Errorf("Labels = %v, want only Urgent", result.Labels)
	}
}

func TestTransformCardUnknownList(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	card := makeRawCard(func(c *TrelloCard) {
		c.IDList = "list-gone"
	})

	result := transformCard(card, listByID, memberByID, labelByID, testNow)

	if result.Status != "Unknown" {
		t.Errorf("Status = %q, want Unknown", result.Status)
	}
	if result.StatusOrder != 0 {
		t.Errorf("StatusOrder = %v, want 0", result.StatusOrder)
	}
	if result.Bucket != bucketProgress {
		t.Errorf("Bucket = %q, want fallback %q", result.Bucket, bucketProgress)
	}
	if result.IsComplete {
		t.Error("IsComplete = true for unknown list")
	}
}

func TestTransformCardCompletedList(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	card := makeRawCard(func(c *TrelloCard) {
		c.IDList = "list-completed"
	})

	result := transformCard(card, listByID, memberByID, labelByID, testNow)

	if !result.IsComplete {
		t.Error("IsComplete = false, want true")
	}
	if result.Bucket != bucketCompleted {
		t.Errorf("Bucket = %q, want %q", result.Bucket, bucketCompleted)
	}
}

func TestTransformCardIdempotent(t *testing.T) {
	listByID, memberByID, labelByID := lookupTables()
	due := testNow.Add(-time.Hour)
	card := makeRawCard(func(c *TrelloCard) {
		c.Due = &due
		c.Checklists = []TrelloChecklist{makeChecklist("cl", "complete", "incomplete")}
	})

	first := transformCard(card, listByID, memberByID, labelByID, testNow)
	second := transformCard(card, listByID, memberByID, labelByID, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("transform not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}
