package port

import (
	"net"
	"strconv"
	"time"
)

// defaultProbeTimeout bounds each connection attempt. Localhost dials
// either succeed or get refused almost instantly; the timeout only
// matters when a firewall rule silently drops the packet.
const defaultProbeTimeout = 500 * time.Millisecond

// Prober checks whether a TCP port on the local machine has an active
// listener.
//
// The struct carries the dial timeout so tests can shorten it and future
// options (e.g. a non-loopback bind address) can be added without
// breaking the API.
type Prober struct {
	// Timeout is the per-dial timeout. The zero value falls back to
	// defaultProbeTimeout.
	Timeout time.Duration
}

// NewProber creates a Prober with the default timeout.
func NewProber() *Prober {
	return &Prober{Timeout: defaultProbeTimeout}
}

// IsListening reports whether a TCP connection to host:port succeeds
// within the timeout. The connection is closed immediately: the probe
// only needs the accept, not any protocol exchange.
func (p *Prober) IsListening(host string, port int) bool {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	defer func() { _ = conn.Close() }()
	return true
}
