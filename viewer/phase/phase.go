// Package phase derives the viewer-facing stream lifecycle (upcoming, live,
// ended) from the room's connection state and end timestamp.
package phase

import (
	"sync"
	"time"

	"github.com/imtaco/live-viewer/viewer"
)

type Phase string

const (
	Upcoming Phase = "upcoming"
	Live     Phase = "live"
	Ended    Phase = "ended"
)

// Input is one snapshot of the signals the phase depends on.
type Input struct {
	Connection viewer.ConnectionState
	EndedAt    *time.Time
	WasLive    bool
}

// Reduce maps a snapshot to a phase and the updated was-live flag. It is
// pure: the same input always gives the same output.
func Reduce(in Input) (Phase, bool) {
	switch {
	case in.EndedAt != nil:
		return Ended, in.WasLive
	case in.Connection == viewer.ConnectionConnected:
		return Live, true
	case in.WasLive && (in.Connection == viewer.ConnectionDisconnecting ||
		in.Connection == viewer.ConnectionDisconnected):
		return Ended, true
	default:
		return Upcoming, in.WasLive
	}
}

// Machine keeps the was-live flag of one session. The flag only ever goes
// from false to true.
type Machine struct {
	mu      sync.Mutex
	wasLive bool
	phase   Phase
}

func NewMachine() *Machine {
	return &Machine{phase: Upcoming}
}

// Observe recomputes the phase from the current connection state and end
// timestamp.
func (m *Machine) Observe(conn viewer.ConnectionState, endedAt *time.Time) Phase {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, wasLive := Reduce(Input{Connection: conn, EndedAt: endedAt, WasLive: m.wasLive})
	m.wasLive = m.wasLive || wasLive
	m.phase = p
	return p
}

func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

func (m *Machine) WasLive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wasLive
}
