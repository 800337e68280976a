package ratelimiter

import (
	"sync"
	"time"
)

// minSweep is the client count below which expired windows are left alone.
const minSweep = 1024

type window struct {
	start time.Time
	count int
}

// FixedWindowRateLimiter allows limit requests per client ip in each window.
// A client's window opens with its first request.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients   map[string]*window
	limit     int
	window    time.Duration
	nextSweep int
	now       func() time.Time
}

func NewFixedWindowLimiter(limit int, w time.Duration) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients:   make(map[string]*window),
		limit:     limit,
		window:    w,
		nextSweep: minSweep,
		now:       time.Now,
	}
}

// Allow records a request from ip. When the limit is reached it reports how
// long the client has to wait for its window to reset.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	w, exists := rl.clients[ip]
	if !exists || now.Sub(w.start) >= rl.window {
		if len(rl.clients) >= rl.nextSweep {
			rl.evictExpired(now)
			rl.nextSweep = max(minSweep, 2*len(rl.clients))
		}
		rl.clients[ip] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, w.start.Add(rl.window).Sub(now)
}

// evictExpired drops closed windows so idle clients do not accumulate.
// Allow only sweeps once the map has doubled since the last sweep, keeping
// the cost amortized. Called with the lock held.
func (rl *FixedWindowRateLimiter) evictExpired(now time.Time) {
	for ip, w := range rl.clients {
		if now.Sub(w.start) >= rl.window {
			delete(rl.clients, ip)
		}
	}
}
