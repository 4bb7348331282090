package main

import (
	"log"
	"net/http"

	"github.com/slack-go/slack"
)

func main() {
	cfg := LoadConfig()

	if err := checkBucketConfig(); err != nil {
		log.Fatalf("Invalid bucket configuration: %v", err)
	}

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	client := NewTrelloClient(cfg)
	service := NewDashboardService(client, cfg)
	cache := NewDashboardCache(service.Assemble, cfg.CacheTTL(), cfg.TrelloBoardID, db)

	var api *slack.Client
	if cfg.SlackConfigured() {
		api = slack.New(cfg.SlackBotToken)
	}
	StartRefreshScheduler(cfg, cache, api)

	srv := NewServer(cache)
	log.Printf("Starting dashboard server on %s (board %s)", cfg.ListenAddr, cfg.TrelloBoardID)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Engine()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
