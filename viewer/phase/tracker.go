package phase

import (
	"sync"

	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer"
)

// Tracker feeds a Machine from the room's observables and publishes the
// resulting phase. Every notification triggers a full recompute from the
// current snapshot, so the order in which the sources fire does not matter.
type Tracker struct {
	conn observable.Observable[viewer.ConnectionState]
	info observable.Observable[viewer.RoomInfo]

	machine *Machine
	phase   *observable.Value[Phase]
	logger  *log.Logger

	mu     sync.Mutex
	unsubs []func()

	// evalMu covers one evaluation from snapshot read to publish; an older
	// snapshot is never published after a newer one
	evalMu sync.Mutex
}

func NewTracker(room viewer.Room, logger *log.Logger) *Tracker {
	return &Tracker{
		conn:    room.ConnectionState(),
		info:    room.RoomInfo(),
		machine: NewMachine(),
		phase:   observable.NewComparable(Upcoming),
		logger:  logger,
	}
}

// Start subscribes to the room and evaluates the current snapshot once.
func (t *Tracker) Start() {
	t.mu.Lock()
	if t.unsubs != nil {
		t.mu.Unlock()
		return
	}
	t.unsubs = []func(){
		t.conn.Subscribe(func(viewer.ConnectionState) { t.recompute() }),
		t.info.Subscribe(func(viewer.RoomInfo) { t.recompute() }),
	}
	t.mu.Unlock()

	t.recompute()
}

func (t *Tracker) Stop() {
	t.mu.Lock()
	unsubs := t.unsubs
	t.unsubs = nil
	t.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}

// Reset starts a new session: the was-live flag is cleared.
func (t *Tracker) Reset() {
	t.evalMu.Lock()
	t.mu.Lock()
	t.machine = NewMachine()
	t.mu.Unlock()
	t.evalMu.Unlock()

	t.recompute()
}

func (t *Tracker) Phase() observable.Observable[Phase] {
	return t.phase
}

func (t *Tracker) WasLive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.machine.WasLive()
}

func (t *Tracker) recompute() {
	t.evalMu.Lock()
	defer t.evalMu.Unlock()

	t.mu.Lock()
	machine := t.machine
	t.mu.Unlock()

	conn := t.conn.Get()
	info := t.info.Get()
	p := machine.Observe(conn, info.EndedAt)

	if prev := t.phase.Get(); prev != p {
		t.logger.Info("Stream phase changed",
			log.String("from", string(prev)),
			log.String("to", string(p)),
			log.String("connection", string(conn)),
			log.Bool("ended", info.EndedAt != nil))
	}
	t.phase.Set(p)
}
