package main

import (
	"math"
	"time"
)

// transformCard resolves one raw card against the board lookup tables.
// It never fails on dangling references; board members and labels can be
// deleted out-of-band between fetches, so each missing lookup has a
// documented fallback instead of an error:
//   - unknown list id: status "Unknown", order 0, bucket "progress"
//   - missing member id: dropped from assignee names, kept in assignee ids
//   - missing label id: dropped entirely
//
// Overdue-ness is evaluated against now, not persisted: the same raw card can
// transform to different isOverdue values across cache generations.
func transformCard(card TrelloCard, listByID map[string]TrelloList, memberByID map[string]TrelloMember, labelByID map[string]TrelloLabel, now time.Time) DashboardCard {
	status := "Unknown"
	var statusOrder float64
	if list, ok := listByID[card.IDList]; ok {
		status = list.Name
		statusOrder = list.Pos
	}

	assignees := make([]string, 0, len(card.IDMembers))
	for _, id := range card.IDMembers {
		if member, ok := memberByID[id]; ok {
			assignees = append(assignees, member.FullName)
		}
	}

	labels := make([]DashboardLabel, 0, len(card.IDLabels))
	for _, id := range card.IDLabels {
		if label, ok := labelByID[id]; ok {
			labels = append(labels, DashboardLabel{Name: label.Name, Color: label.Color})
		}
	}

	checklists := make([]DashboardChecklist, 0, len(card.Checklists))
	checklistTotal := 0
	checklistCompleted := 0
	for _, cl := range card.Checklists {
		items := make([]ChecklistItem, 0, len(cl.CheckItems))
		completed := 0
		for _, item := range cl.CheckItems {
			complete := item.State == "complete"
			if complete {
				completed++
			}
			items = append(items, ChecklistItem{Name: item.Name, Complete: complete})
		}
		checklists = append(checklists, DashboardChecklist{
			Name:      cl.Name,
			Items:     items,
			Completed: completed,
			Total:     len(items),
		})
		checklistTotal += len(items)
		checklistCompleted += completed
	}

	// Round half away from zero: 2/3 -> 67, 1/2 -> 50, 1/8 -> 13.
	progress := 0
	if checklistTotal > 0 {
		progress = int(math.Round(float64(checklistCompleted) / float64(checklistTotal) * 100))
	}

	isOverdue := card.Due != nil && !card.DueComplete && card.Due.Before(now)
	isComplete := status == listCompleted

	bucket, ok := bucketForStatus(status)
	if !ok {
		bucket = bucketProgress
	}

	return DashboardCard{
		ID:                 card.ID,
		Title:              card.Name,
		Description:        card.Desc,
		Status:             status,
		Bucket:             bucket,
		StatusOrder:        statusOrder,
		Assignees:          assignees,
		AssigneeIDs:        card.IDMembers,
		Labels:             labels,
		DueDate:            card.Due,
		IsOverdue:          isOverdue,
		IsComplete:         isComplete,
		LastActivity:       card.DateLastActivity,
		TrelloURL:          card.ShortURL,
		ChecklistProgress:  progress,
		ChecklistTotal:     checklistTotal,
		ChecklistCompleted: checklistCompleted,
		Checklists:         checklists,
	}
}
