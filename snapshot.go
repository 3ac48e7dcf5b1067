package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/Zachkp/folio/internal/cache"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/portfolio"
)

const snapshotKey = "portfolio"

type builder interface {
	Build(ctx context.Context) (*portfolio.Portfolio, error)
}

// buildRecord summarises the most recent build attempt.
type buildRecord struct {
	Builds    int64            `json:"builds"`
	Failures  int64            `json:"failures"`
	CacheHits int64            `json:"cache_hits"`
	LastAt    time.Time        `json:"last_at,omitzero"`
	LastError string           `json:"last_error,omitempty"`
	Last      *portfolio.Stats `json:"last,omitempty"`
}

// snapshots serves portfolios, building a fresh one per request unless the
// snapshot cache is enabled.
type snapshots struct {
	b     builder
	cache *cache.Cache // nil when disabled
	ttl   time.Duration
	log   *slog.Logger

	mu  sync.Mutex
	rec buildRecord
}

func newSnapshots(b builder, cfg config.Cache, log *slog.Logger) (*snapshots, error) {
	s := &snapshots{b: b, ttl: cfg.TTL, log: log}
	if cfg.TTL <= 0 {
		return s, nil
	}
	c, err := cache.New(cfg.MaxSizeMB << 20)
	if err != nil {
		return nil, err
	}
	s.cache = c
	log.Info("snapshot cache enabled", "ttl", cfg.TTL, "max_size_mb", cfg.MaxSizeMB)
	return s, nil
}

// Portfolio returns the cached snapshot when one is live, otherwise builds.
func (s *snapshots) Portfolio(ctx context.Context) (*portfolio.Portfolio, error) {
	if p, ok := s.cached(); ok {
		return p, nil
	}

	p, err := s.b.Build(ctx)

	s.mu.Lock()
	s.rec.Builds++
	s.rec.LastAt = time.Now()
	if err != nil {
		s.rec.Failures++
		s.rec.LastError = err.Error()
	} else {
		s.rec.LastError = ""
		stats := p.Stats
		s.rec.Last = &stats
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	s.store(p)
	return p, nil
}

func (s *snapshots) cached() (*portfolio.Portfolio, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, ok := s.cache.Get(snapshotKey)
	if !ok {
		return nil, false
	}
	var p portfolio.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("discarding unreadable snapshot", "error", err)
		s.cache.Delete(snapshotKey)
		return nil, false
	}
	s.mu.Lock()
	s.rec.CacheHits++
	s.mu.Unlock()
	return &p, true
}

func (s *snapshots) store(p *portfolio.Portfolio) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		s.log.Warn("snapshot not cached", "error", err)
		return
	}
	if !s.cache.Set(snapshotKey, data, s.ttl) {
		s.log.Warn("snapshot rejected by cache", "bytes", len(data))
	}
}

// Invalidate drops the cached snapshot so the next request rebuilds.
func (s *snapshots) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(snapshotKey)
	}
}

// Record returns a copy of the build record.
func (s *snapshots) Record() buildRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.rec
	if rec.Last != nil {
		last := *rec.Last
		rec.Last = &last
	}
	return rec
}

func (s *snapshots) CacheEnabled() bool { return s.cache != nil }

func (s *snapshots) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}
