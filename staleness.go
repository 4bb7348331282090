package main

import "time"

// Staleness thresholds in days since last activity.
const (
	staleAfterDays = 5
	stuckAfterDays = 10
)

const (
	stalenessFresh = "fresh"
	stalenessStale = "stale"
	stalenessStuck = "stuck"
)

func cardStaleness(lastActivity, now time.Time) string {
	days := int(now.Sub(lastActivity).Hours() / 24)
	switch {
	case days >= stuckAfterDays:
		return stalenessStuck
	case days >= staleAfterDays:
		return stalenessStale
	default:
		return stalenessFresh
	}
}

// Capacity bands by active card count: 0-2 available, 3-4 moderate, 5+ high.
const (
	capacityAvailable = "available"
	capacityModerate  = "moderate"
	capacityHigh      = "high"
)

func capacityLevel(activeCards int) string {
	switch {
	case activeCards <= 2:
		return capacityAvailable
	case activeCards <= 4:
		return capacityModerate
	default:
		return capacityHigh
	}
}
