package signal

import (
	"sync"
	"time"

	"github.com/pragmr/vorko/internal/domain"
)

// JoinRateLimiter caps join attempts per account in a sliding window.
type JoinRateLimiter struct {
	mu       sync.Mutex
	history  map[domain.AccountID][]time.Time
	limit    int
	interval time.Duration
}

func NewJoinRateLimiter(limit int, interval time.Duration) *JoinRateLimiter {
	return &JoinRateLimiter{
		history:  make(map[domain.AccountID][]time.Time),
		limit:    limit,
		interval: interval,
	}
}

func (rl *JoinRateLimiter) Allow(account domain.AccountID) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.interval)

	attempts := rl.history[account]
	fresh := make([]time.Time, 0, len(attempts))
	for _, t := range attempts {
		if t.After(windowStart) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= rl.limit {
		rl.history[account] = fresh
		return false
	}

	fresh = append(fresh, now)
	rl.history[account] = fresh
	return true
}
