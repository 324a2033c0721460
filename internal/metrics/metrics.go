// Package metrics provides the received-counter collaborator.
package metrics

import (
	"sync"

	"github.com/vikunalabs/camt-reporter/internal/domain"
)

// Counters counts received messages per report type. Safe for concurrent use.
type Counters struct {
	mu       sync.Mutex
	received map[domain.ReportType]int64
}

func NewCounters() *Counters {
	return &Counters{received: make(map[domain.ReportType]int64)}
}

func (c *Counters) IncReceived(reportType domain.ReportType) {
	c.mu.Lock()
	c.received[reportType]++
	c.mu.Unlock()
}

// Snapshot returns a copy of the current counts.
func (c *Counters) Snapshot() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.received))
	for k, v := range c.received {
		out[string(k)] = v
	}
	return out
}
