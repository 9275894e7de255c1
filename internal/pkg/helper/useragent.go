package helper

import "sync/atomic"

// Taken from a list of common user agents on the Internet.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 6.1; WOW64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/35.0.1916.153 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
}

// Rotation hands out user agents round-robin. Safe for concurrent use.
type Rotation struct {
	agents []string
	next   atomic.Uint64
}

// NewRotation creates a rotation over the given agents, falling back to the
// built-in list when none are provided.
func NewRotation(agents []string) *Rotation {
	if len(agents) == 0 {
		agents = defaultUserAgents
	}
	return &Rotation{agents: agents}
}

// Next returns the next user agent in round-robin order.
func (r *Rotation) Next() string {
	n := r.next.Add(1) - 1
	return r.agents[n%uint64(len(r.agents))]
}
