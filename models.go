package main

import "time"

// ===== Raw Trello types (shape of the board API responses) =====

type TrelloList struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Pos  float64 `json:"pos"`
}

type TrelloMember struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type TrelloLabel struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TrelloCheckItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"` // "complete" or "incomplete"
}

type TrelloChecklist struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	CheckItems []TrelloCheckItem `json:"checkItems"`
}

type TrelloCard struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Desc             string            `json:"desc"`
	IDList           string            `json:"idList"`
	IDMembers        []string          `json:"idMembers"`
	IDLabels         []string          `json:"idLabels"`
	Due              *time.Time        `json:"due"`
	DueComplete      bool              `json:"dueComplete"`
	DateLastActivity time.Time         `json:"dateLastActivity"`
	ShortURL         string            `json:"shortUrl"`
	Checklists       []TrelloChecklist `json:"checklists"`
}

// ===== Normalized dashboard types =====

type DashboardLabel struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ChecklistItem struct {
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

type DashboardChecklist struct {
	Name      string          `json:"name"`
	Items     []ChecklistItem `json:"items"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
}

// DashboardCard is a raw card resolved against the board's lookup tables.
// Immutable once produced; overdue-ness is evaluated at transform time.
type DashboardCard struct {
	ID                 string               `json:"id"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Status             string               `json:"status"` // list name, e.g. "In Progress"
	Bucket             string               `json:"bucket"` // bucket key, e.g. "progress"
	StatusOrder        float64              `json:"statusOrder"`
	Assignees          []string             `json:"assignees"`
	AssigneeIDs        []string             `json:"assigneeIds"`
	Labels             []DashboardLabel     `json:"labels"`
	DueDate            *time.Time           `json:"dueDate"`
	IsOverdue          bool                 `json:"isOverdue"`
	IsComplete         bool                 `json:"isComplete"`
	LastActivity       time.Time            `json:"lastActivity"`
	TrelloURL          string               `json:"trelloUrl"`
	ChecklistProgress  int                  `json:"checklistProgress"` // 0-100
	ChecklistTotal     int                  `json:"checklistTotal"`
	ChecklistCompleted int                  `json:"checklistCompleted"`
	Checklists         []DashboardChecklist `json:"checklists"`
}

// ===== Aggregated types =====

type TeamMemberWorkload struct {
	MemberID        string          `json:"memberId"`
	MemberName      string          `json:"memberName"`
	CardsInProgress int             `json:"cardsInProgress"`
	CardsInReview   int             `json:"cardsInReview"`
	CardsOnHold     int             `json:"cardsOnHold,omitempty"`
	CardsCompleted  int             `json:"cardsCompleted,omitempty"`
	CardsTotal      int             `json:"cardsTotal"` // excludes completed
	AverageProgress int             `json:"averageProgress"`
	OverdueCards    int             `json:"overdueCards"`
	Cards           []DashboardCard `json:"cards"`
}

type BoardSummary struct {
	TotalCards        int            `json:"totalCards"`
	ByStatus          map[string]int `json:"byStatus"`
	ByMember          map[string]int `json:"byMember"`
	QueueDepth        int            `json:"queueDepth"`
	InProgress        int            `json:"inProgress"`
	RecentlyCompleted int            `json:"recentlyCompleted"` // last 30 days
	OnHold            int            `json:"onHold"`
	OverdueCount      int            `json:"overdueCount"`
	LastUpdated       time.Time      `json:"lastUpdated"`
}

// DashboardData is the composite payload and the unit of caching.
type DashboardData struct {
	Summary   BoardSummary         `json:"summary"`
	Cards     []DashboardCard      `json:"cards"`
	Members   []TrelloMember       `json:"members"`
	Lists     []TrelloList         `json:"lists"`
	Workloads []TeamMemberWorkload `json:"workloads"`
}
