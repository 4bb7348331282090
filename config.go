package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	TrelloAPIKey  string `yaml:"trello_api_key"`
	TrelloToken   string `yaml:"trello_token"`
	TrelloBoardID string `yaml:"trello_board_id"`

	TeamMemberIDs    []string `yaml:"team_member_ids"`
	ExcludeMemberIDs []string `yaml:"exclude_member_ids"`

	ListenAddr      string `yaml:"listen_addr"`
	DBPath          string `yaml:"db_path"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	RefreshSchedule string `yaml:"refresh_schedule"`

	SlackBotToken  string `yaml:"slack_bot_token"`
	SlackChannelID string `yaml:"slack_channel_id"`

	Timezone string         `yaml:"timezone"`
	Location *time.Location `yaml:"-"`
}

func LoadConfig() Config {
	var cfg Config

	// Load from config.yaml if it exists
	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.TrelloAPIKey, "TRELLO_API_KEY")
	envOverride(&cfg.TrelloToken, "TRELLO_TOKEN")
	envOverride(&cfg.TrelloBoardID, "TRELLO_BOARD_ID")
	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverride(&cfg.DBPath, "DB_PATH")
	envOverrideInt(&cfg.CacheTTLMinutes, "CACHE_TTL_MINUTES")
	envOverride(&cfg.RefreshSchedule, "REFRESH_SCHEDULE")
	envOverride(&cfg.SlackBotToken, "SLACK_BOT_TOKEN")
	envOverride(&cfg.SlackChannelID, "SLACK_CHANNEL_ID")
	envOverride(&cfg.Timezone, "TIMEZONE")
	envOverrideList(&cfg.TeamMemberIDs, "TEAM_MEMBER_IDS")
	envOverrideList(&cfg.ExcludeMemberIDs, "EXCLUDE_MEMBER_IDS")

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./trellodash.db"
	}
	if cfg.CacheTTLMinutes == 0 {
		cfg.CacheTTLMinutes = 30
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	// Validate required fields
	required := map[string]string{
		"trello_api_key":  cfg.TrelloAPIKey,
		"trello_token":    cfg.TrelloToken,
		"trello_board_id": cfg.TrelloBoardID,
	}
	for name, val := range required {
		if val == "" {
			log.Fatalf("Required config '%s' is not set (via config.yaml or env var)", name)
		}
	}
	if len(cfg.TeamMemberIDs) == 0 {
		log.Fatalf("Required config 'team_member_ids' is not set (via config.yaml or env var)")
	}
	if cfg.CacheTTLMinutes < 1 {
		log.Fatalf("invalid cache_ttl_minutes '%d': must be >= 1", cfg.CacheTTLMinutes)
	}
	if cfg.SlackBotToken != "" && cfg.SlackChannelID == "" {
		log.Fatalf("slack_channel_id is required when slack_bot_token is set")
	}

	if strings.EqualFold(cfg.Timezone, "Local") {
		cfg.Location = time.Local
	} else {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			log.Fatalf("invalid timezone '%s': %v", cfg.Timezone, err)
		}
		cfg.Location = loc
	}

	return cfg
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

func (c Config) SlackConfigured() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			log.Fatalf("invalid %s '%s': %v", envKey, val, err)
		}
		*field = parsed
	}
}

func envOverrideList(field *[]string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = nil
		for _, item := range strings.Split(val, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				*field = append(*field, item)
			}
		}
	}
}
