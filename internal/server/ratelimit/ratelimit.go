// Package ratelimit throttles scoring API clients with per-endpoint
// token buckets. Batch scoring is far more expensive than a single
// score, so limits are configured per route rather than globally.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// bucket is one client's token bucket for one endpoint. Tokens refill
// continuously at rate per second up to capacity.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	level    float64
	refilled time.Time
	lastSeen time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		level:    float64(capacity),
		refilled: now,
		lastSeen: now,
	}
}

// refill tops up the bucket for the time elapsed. Callers hold b.mu.
func (b *bucket) refill(now time.Time) {
	b.level = math.Min(b.capacity, b.level+now.Sub(b.refilled).Seconds()*b.rate)
	b.refilled = now
}

// take consumes one token if available.
func (b *bucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	b.refill(now)
	b.lastSeen = now
	if b.level >= 1 {
		b.level--
		return true
	}
	return false
}

// status reports the remaining tokens and when the bucket is full
// again, without consuming anything.
func (b *bucket) status() (remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := time.Now()
	b.refill(now)
	remaining = int(b.level)
	reset = now
	if b.level < b.capacity {
		secs := (b.capacity - b.level) / b.rate
		reset = now.Add(time.Duration(secs * float64(time.Second)))
	}
	return remaining, reset
}

// Info describes the rate limit state for one decision. The server
// renders it into X-RateLimit-* response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds the limiter settings, usually built by LoadConfig.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter hands out rate limit decisions keyed by client and route.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     *Config
	done    chan struct{}
}

// NewLimiter builds a limiter and starts the idle-bucket janitor when
// cleanup is configured. Call Stop on shutdown.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		cfg:     cfg,
		done:    make(chan struct{}),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.janitor(cfg.CleanupInterval)
	}
	return l
}

// Allow decides whether the client may hit the endpoint now.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.cfg.Enabled || l.cfg.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.cfg.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.cfg.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.cfg.DefaultLimit,
			Window: l.cfg.DefaultWindow,
		}
	}
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+" "+method+" "+endpoint, ec)
	allowed := b.take()
	remaining, reset := b.status()
	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if ra := time.Until(reset); ra > 0 {
			info.RetryAfter = ra
		}
	}
	return allowed, info
}

func (l *Limiter) bucketFor(key string, ec *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok := l.buckets[key]; ok {
		return b
	}
	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	b := newBucket(capacity, float64(ec.Limit)/ec.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) janitor(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			l.sweep(time.Now().Add(-time.Hour))
		case <-l.done:
			return
		}
	}
}

// sweep drops buckets idle since before the cutoff.
func (l *Limiter) sweep(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		b.mu.Lock()
		idle := b.lastSeen.Before(cutoff)
		b.mu.Unlock()
		if idle {
			delete(l.buckets, key)
		}
	}
}

// Stop shuts down the janitor.
func (l *Limiter) Stop() {
	close(l.done)
}
