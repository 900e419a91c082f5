package middleware

import (
	"sync"
	"time"

	"github.com/akolanti/StudyAPI/internal/config"
	"golang.org/x/time/rate"
)

var limiterInstance = NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type IPRateLimiter struct {
	ips        map[string]*visitor
	mu         sync.Mutex
	rateLimit  rate.Limit
	burstRate  int
	maxTracked int
	idleAfter  time.Duration
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:        make(map[string]*visitor),
		rateLimit:  r,
		burstRate:  b,
		maxTracked: config.MaxTrackedIPs,
		idleAfter:  config.IdleIPLimiterTimeout,
	}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()
	now := time.Now()
	v, exists := i.ips[ip]
	if !exists {
		if len(i.ips) >= i.maxTracked {
			i.evictIdle(now)
		}
		v = &visitor{limiter: rate.NewLimiter(i.rateLimit, i.burstRate)}
		i.ips[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// evictIdle drops limiters not used for idleAfter. Caller holds mu.
func (i *IPRateLimiter) evictIdle(now time.Time) {
	for ip, v := range i.ips {
		if now.Sub(v.lastSeen) > i.idleAfter {
			delete(i.ips, ip)
		}
	}
}

//TODO: move the per-ip limiters to redis so they hold across instances
