package main

import "fmt"

// Trello list names from the tracked board.
// WARNING: if these are renamed on the board, metrics will silently read 0.
// The data service validates fetched list names against these at runtime.
const (
	listQueue           = "Change Request Queue"
	listNewProjectQueue = "New Project Queue"
	listPlanning        = "Reviewing and Planning"
	listInProgress      = "In Progress"
	listReview          = "Pending Review"
	listCompleted       = "Completed"
	listOnHold          = "On Hold"
)

var expectedListNames = []string{
	listQueue,
	listNewProjectQueue,
	listPlanning,
	listInProgress,
	listReview,
	listCompleted,
	listOnHold,
}

// Bucket keys: high-level pipeline stages. Each bucket aggregates one or more lists.
const (
	bucketQueue     = "queue"
	bucketProgress  = "progress"
	bucketOnHold    = "onHold"
	bucketCompleted = "completed"
)

var bucketLists = map[string][]string{
	bucketProgress:  {listPlanning, listInProgress, listReview},
	bucketQueue:     {listQueue, listNewProjectQueue},
	bucketOnHold:    {listOnHold},
	bucketCompleted: {listCompleted},
}

// Pipeline order, also used for deterministic iteration over bucketLists.
var bucketOrder = []string{bucketQueue, bucketProgress, bucketOnHold, bucketCompleted}

// statusSortOrder ranks list names for display within member cards.
// Lower ranks first. Distinct from bucket membership: "Reviewing and Planning"
// groups with "In Progress" for workload counting but ranks separately here.
var statusSortOrder = map[string]int{
	listInProgress:      0,
	listPlanning:        1,
	listReview:          2,
	listOnHold:          3,
	listCompleted:       4,
	listQueue:           5,
	listNewProjectQueue: 6,
}

func statusRank(status string) int {
	if rank, ok := statusSortOrder[status]; ok {
		return rank
	}
	return 99
}

// allowedLists is the flat set of lists the dashboard tracks. Cards in any
// other board list are filtered out of the payload entirely.
var allowedLists = func() map[string]bool {
	allowed := make(map[string]bool)
	for _, names := range bucketLists {
		for _, name := range names {
			allowed[name] = true
		}
	}
	return allowed
}()

// bucketForStatus resolves a list name to its owning bucket key.
// Callers map not-found to bucketProgress rather than failing.
func bucketForStatus(status string) (string, bool) {
	for _, key := range bucketOrder {
		for _, name := range bucketLists[key] {
			if name == status {
				return key, true
			}
		}
	}
	return "", false
}

// checkBucketConfig verifies the bucket tables at startup: every expected list
// belongs to exactly one bucket. A list in two buckets is a configuration
// defect and must not be silently resolved by lookup order.
func checkBucketConfig() error {
	seen := make(map[string]string)
	for _, key := range bucketOrder {
		for _, name := range bucketLists[key] {
			if prev, ok := seen[name]; ok {
				return fmt.Errorf("list %q appears in both %q and %q buckets", name, prev, key)
			}
			seen[name] = key
		}
	}
	for _, name := range expectedListNames {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("list %q is not assigned to any bucket", name)
		}
	}
	return nil
}

// Completed cards older than this vanish from the payload.
const completedLookbackDays = 30
