package main

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"
)

type assembleFunc func(ctx context.Context) (*DashboardData, error)

// DashboardCache holds one shared payload per board with a TTL and a tag
// generation. Reads within the TTL never contact the board. Invalidation
// bumps the generation; the next read recomputes lazily. A refresh builds a
// brand-new payload and replaces the reference atomically under the lock, so
// concurrent readers all observe the same immutable object and no reader
// mutates it. The lock also spans recompute, which keeps a refresh from
// stampeding the board API.
type DashboardCache struct {
	assemble assembleFunc
	ttl      time.Duration
	boardID  string
	db       *sql.DB // optional snapshot persistence
	now      func() time.Time

	mu         sync.Mutex
	payload    *DashboardData
	expiresAt  time.Time
	generation int64
	payloadGen int64 // generation the current payload was built under
}

func NewDashboardCache(assemble assembleFunc, ttl time.Duration, boardID string, db *sql.DB) *DashboardCache {
	c := &DashboardCache{
		assemble: assemble,
		ttl:      ttl,
		boardID:  boardID,
		db:       db,
		now:      time.Now,
	}
	c.restore()
	return c
}

// Get returns the cached payload, recomputing first if it is missing, past
// its TTL, or built under a stale generation.
func (c *DashboardCache) Get(ctx context.Context) (*DashboardData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.payload != nil && now.Before(c.expiresAt) && c.payloadGen == c.generation {
		return c.payload, nil
	}

	data, err := c.assemble(ctx)
	if err != nil {
		return nil, err
	}

	c.payload = data
	c.expiresAt = now.Add(c.ttl)
	c.payloadGen = c.generation
	c.persist(data)
	return data, nil
}

// Invalidate bumps the tag generation so the next read re-runs the full
// cycle. It does not itself re-fetch.
func (c *DashboardCache) Invalidate() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation
}

func (c *DashboardCache) persist(data *DashboardData) {
	if c.db == nil {
		return
	}
	if err := SaveSnapshot(c.db, c.boardID, data, c.expiresAt, c.payloadGen); err != nil {
		log.Printf("cache snapshot save failed: %v", err)
	}
}

// restore loads a persisted snapshot so a restart within the TTL serves the
// last payload instead of cold-fetching. Expired snapshots are never served.
func (c *DashboardCache) restore() {
	if c.db == nil {
		return
	}
	data, expiresAt, err := LoadSnapshot(c.db, c.boardID, c.now())
	if err != nil {
		log.Printf("cache snapshot load failed: %v", err)
		return
	}
	if data != nil {
		c.payload = data
		c.expiresAt = expiresAt
		log.Printf("cache snapshot restored board=%s valid until %s", c.boardID, expiresAt.Format(time.RFC3339))
	}
}
