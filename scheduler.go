package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

const refreshTimeout = 60 * time.Second

// StartRefreshScheduler starts a cron-based cache warmer: each tick
// invalidates the cache tag and recomputes, so readers inside the next TTL
// window get fresh data without paying the fetch cost. When Slack is
// configured, a summary digest is posted to the report channel after each
// successful refresh.
// The schedule is a standard 5-field cron expression (minute hour day-of-month month day-of-week).
// Examples: "0 7 * * *" (daily 7am), "0 7 * * 1-5" (weekdays 7am).
func StartRefreshScheduler(cfg Config, cache *DashboardCache, api *slack.Client) {
	schedule := strings.TrimSpace(cfg.RefreshSchedule)
	if schedule == "" {
		log.Println("Scheduled refresh disabled (refresh_schedule not set)")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid refresh_schedule '%s': %v; scheduled refresh disabled", schedule, err)
		return
	}
	log.Printf("Scheduled refresh enabled (cron: %s)", schedule)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next refresh at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			cache.Invalidate()
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			data, err := cache.Get(ctx)
			cancel()
			if err != nil {
				log.Printf("Scheduled refresh error: %v", err)
				continue
			}
			log.Printf("Scheduled refresh complete: %d cards, %d members tracked",
				data.Summary.TotalCards, len(data.Workloads))

			if api != nil && cfg.SlackChannelID != "" {
				digest := FormatSummaryDigest(data, time.Now().In(cfg.Location))
				_, _, postErr := api.PostMessage(cfg.SlackChannelID, slack.MsgOptionText(digest, false))
				if postErr != nil {
					log.Printf("Digest post error: %v", postErr)
				}
			}
		}
	}()
}
