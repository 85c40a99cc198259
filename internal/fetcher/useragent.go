package fetcher

import (
	"math/rand"
	"sync"
)

// UserAgentRotator hands out a User-Agent string per request from a bounded
// pool of realistic modern browser strings.
type UserAgentRotator struct {
	mu      sync.Mutex
	agents  []string
	enabled bool
}

func NewUserAgentRotator(agents []string, enabled bool) *UserAgentRotator {
	return &UserAgentRotator{agents: agents, enabled: enabled}
}

func (r *UserAgentRotator) Next() string {
	if len(r.agents) == 0 {
		return "hireradar/1.0"
	}
	if !r.enabled {
		return r.agents[0]
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.agents[rand.Intn(len(r.agents))]
}
