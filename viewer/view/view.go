// Package view wires the session, phase tracker and playback controller of
// one viewer together and publishes what should be on screen.
package view

import (
	"context"
	"sync"

	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer"
	"github.com/imtaco/live-viewer/viewer/phase"
	"github.com/imtaco/live-viewer/viewer/playback"
	"github.com/imtaco/live-viewer/viewer/presenter"
	"github.com/imtaco/live-viewer/viewer/session"
)

// Render is the surface the viewer shows.
type Render string

const (
	RenderWaiting  Render = "waiting"
	RenderEnded    Render = "ended"
	RenderRealtime Render = "realtime"
	RenderHLS      Render = "hls"
)

// LayerOption is a layer with its display label.
type LayerOption struct {
	viewer.Layer
	Label string `json:"label"`
}

type Snapshot struct {
	Phase        phase.Phase            `json:"phase"`
	Render       Render                 `json:"render"`
	RoomCode     string                 `json:"roomCode,omitempty"`
	Connection   viewer.ConnectionState `json:"connection"`
	IsConnecting bool                   `json:"isConnecting"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
	Notice       string                 `json:"notice,omitempty"`
	StreamURL    string                 `json:"streamUrl,omitempty"`
	Target       *viewer.Peer           `json:"target,omitempty"`
	Playback     playback.State         `json:"playback"`
	Layers       []LayerOption          `json:"layers"`
	CanControl   bool                   `json:"canControl"`
}

// SelectRender picks the surface for a phase. A live stream prefers the
// realtime target over HLS.
func SelectRender(p phase.Phase, target *viewer.Peer, streamURL string) Render {
	switch p {
	case phase.Ended:
		return RenderEnded
	case phase.Live:
		if target != nil {
			return RenderRealtime
		}
		if streamURL != "" {
			return RenderHLS
		}
	}
	return RenderWaiting
}

type View struct {
	session *session.Controller
	tracker *phase.Tracker
	player  *playback.Controller
	peers   observable.Observable[[]viewer.Peer]
	logger  *log.Logger

	mu        sync.Mutex
	unsubs    []func()
	streamURL string
	closed    bool

	snapshot *observable.Value[Snapshot]
}

func New(
	sess *session.Controller,
	tracker *phase.Tracker,
	player *playback.Controller,
	room viewer.Room,
	logger *log.Logger,
) *View {
	v := &View{
		session: sess,
		tracker: tracker,
		player:  player,
		peers:   room.Peers(),
		logger:  logger,
	}
	v.snapshot = observable.New(v.build(), nil)
	// the was-live flag belongs to the session
	sess.OnSessionStart(tracker.Reset)
	return v
}

// Start subscribes to every source and evaluates the current state once.
func (v *View) Start() {
	v.tracker.Start()

	v.mu.Lock()
	v.unsubs = []func(){
		v.session.State().Subscribe(v.onSession),
		v.tracker.Phase().Subscribe(func(phase.Phase) { v.refresh() }),
		v.player.State().Subscribe(func(playback.State) { v.refresh() }),
		v.peers.Subscribe(func([]viewer.Peer) { v.refresh() }),
	}
	v.mu.Unlock()

	v.onSession(v.session.State().Get())
}

func (v *View) Snapshot() observable.Observable[Snapshot] {
	return v.snapshot
}

// Load starts a new session for input. Input that names no room leaves the
// current phase alone.
func (v *View) Load(ctx context.Context, input string) error {
	return v.session.Load(ctx, input)
}

func (v *View) Leave(ctx context.Context) {
	v.session.Leave(ctx)
	v.tracker.Reset()
}

func (v *View) Play(ctx context.Context) error {
	return v.player.Play(ctx)
}

func (v *View) Pause() {
	v.player.Pause()
}

func (v *View) SeekToLive(ctx context.Context) {
	v.player.SeekToLive(ctx)
}

func (v *View) SetVolume(volume int) {
	v.player.SetVolume(volume)
}

func (v *View) SelectLayer(url string) {
	v.player.SelectLayer(url)
}

// Close is the view teardown: leave the room, drop the player, stop
// listening.
func (v *View) Close(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	unsubs := v.unsubs
	v.unsubs = nil
	v.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	v.session.Close(ctx)
	v.tracker.Stop()
	v.player.Close()
}

func (v *View) onSession(st session.State) {
	v.mu.Lock()
	changed := !v.closed && st.StreamURL != v.streamURL
	if changed {
		v.streamURL = st.StreamURL
	}
	v.mu.Unlock()

	if changed {
		v.logger.Info("Stream URL changed", log.String("url", st.StreamURL))
		if err := v.player.SetURL(st.StreamURL); err != nil {
			v.logger.Warn("Failed to attach player", log.Error(err))
		}
	}
	v.refresh()
}

func (v *View) refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.snapshot.Set(v.build())
}

func (v *View) build() Snapshot {
	sess := v.session.State().Get()
	ph := v.tracker.Phase().Get()
	pb := v.player.State().Get()
	target := presenter.SelectTarget(v.peers.Get())

	errMsg := sess.ErrorMessage
	if errMsg == "" {
		errMsg = pb.ErrorMessage
	}

	layers := make([]LayerOption, 0, len(pb.Layers))
	for _, l := range pb.Layers {
		layers = append(layers, LayerOption{Layer: l, Label: presenter.LayerLabel(l)})
	}

	return Snapshot{
		Phase:        ph,
		Render:       SelectRender(ph, target, sess.StreamURL),
		RoomCode:     sess.RoomCode,
		Connection:   sess.Connection,
		IsConnecting: sess.IsConnecting,
		ErrorMessage: errMsg,
		Notice:       sess.Notice,
		StreamURL:    sess.StreamURL,
		Target:       target,
		Playback:     pb,
		Layers:       layers,
		CanControl:   pb.Attached,
	}
}
