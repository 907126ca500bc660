package health

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// ProbeStatus is the outcome of the most recent readiness probe
type ProbeStatus struct {
	Ready     bool      `json:"ready"`
	Address   string    `json:"address"`
	CheckedAt time.Time `json:"checked_at,omitempty"`
	LastError string    `json:"last_error,omitempty"`
	Checks    int       `json:"checks"`
}

// Prober reports whether the camoufox server accepts TCP connections
type Prober struct {
	addr    string
	timeout time.Duration

	mu     sync.RWMutex
	status ProbeStatus
}

func NewProber(addr string, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Prober{
		addr:    addr,
		timeout: timeout,
		status:  ProbeStatus{Address: addr},
	}
}

// Check dials the server once and records the result
func (p *Prober) Check() error {
	conn, err := net.DialTimeout("tcp", p.addr, p.timeout)
	if err == nil {
		conn.Close()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.status.Checks++
	p.status.CheckedAt = time.Now()
	if err != nil {
		p.status.Ready = false
		p.status.LastError = err.Error()
		return fmt.Errorf("camoufox server not reachable at %s: %w", p.addr, err)
	}

	p.status.Ready = true
	p.status.LastError = ""
	return nil
}

func (p *Prober) Status() ProbeStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
