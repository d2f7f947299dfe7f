// Package playback owns the HLS player handle for the current stream URL and
// turns its events into view state.
package playback

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer"
)

const (
	DefaultVolume = 100
	MinVolume     = 0
	MaxVolume     = 100

	genericErrorMessage = "playback error"
	playFailedMessage   = "unable to start playback"
	noStreamMessage     = "no stream loaded"
)

// State is what the view renders for the player.
type State struct {
	URL             string         `json:"url,omitempty"`
	Attached        bool           `json:"attached"`
	Volume          int            `json:"volume"`
	Paused          bool           `json:"paused"`
	IsLive          bool           `json:"isLive"`
	AutoplayBlocked bool           `json:"autoplayBlocked"`
	ErrorMessage    string         `json:"errorMessage,omitempty"`
	Layers          []viewer.Layer `json:"layers"`
	CurrentLayer    *viewer.Layer  `json:"currentLayer,omitempty"`
}

// handle is the single live player and the listeners registered on it.
type handle struct {
	player    viewer.Player
	gen       uint64
	listeners map[viewer.EventKind]viewer.ListenerID
}

// Controller owns at most one player at a time. A URL change tears the old
// player down before the new one is built; callbacks from a replaced player
// are dropped by comparing generations. Events a player emits while its
// listeners are still being registered count as its own.
type Controller struct {
	factory viewer.PlayerFactory
	sink    io.Writer
	logger  *log.Logger

	mu     sync.Mutex
	handle *handle
	gen    uint64
	closed bool
	st     State

	state *observable.Value[State]
}

func NewController(factory viewer.PlayerFactory, sink io.Writer, logger *log.Logger) *Controller {
	initial := State{
		Volume: DefaultVolume,
		Paused: true,
		IsLive: true,
		Layers: []viewer.Layer{},
	}
	return &Controller{
		factory: factory,
		sink:    sink,
		logger:  logger,
		st:      initial,
		state:   observable.New(initial, nil),
	}
}

// State publishes the player state. Subscribers run under the controller
// lock and must not call back into the controller.
func (c *Controller) State() observable.Observable[State] {
	return c.state
}

// SetURL binds the controller to url. The same URL is a no-op; an empty URL
// detaches the current player.
func (c *Controller) SetURL(url string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.New(viewer.ErrDisposed, "playback controller closed")
	}
	if url == c.st.URL && (url == "" || c.handle != nil) {
		c.mu.Unlock()
		return nil
	}
	old := c.detachLocked()
	c.gen++
	gen := c.gen
	c.st.URL = url
	c.st.Paused = true
	c.st.IsLive = true
	c.st.AutoplayBlocked = false
	c.st.ErrorMessage = ""
	c.st.Layers = []viewer.Layer{}
	c.st.CurrentLayer = nil
	c.publishLocked()
	c.mu.Unlock()

	c.teardown(old)
	if url == "" {
		return nil
	}

	player, err := c.factory.NewPlayer(url, c.sink)
	if err != nil {
		c.logger.Error("Failed to create player", log.String("url", url), log.Error(err))
		c.mu.Lock()
		if c.gen == gen {
			c.st.ErrorMessage = errors.Message(err)
			c.publishLocked()
		}
		c.mu.Unlock()
		playerErrors.Add(context.Background(), 1)
		return errors.Wrap(viewer.ErrPlayback, err, "create player")
	}

	h := &handle{
		player:    player,
		gen:       gen,
		listeners: make(map[viewer.EventKind]viewer.ListenerID, len(viewer.PlayerEventKinds)),
	}
	for _, kind := range viewer.PlayerEventKinds {
		h.listeners[kind] = player.On(kind, c.eventHandler(gen))
	}

	c.mu.Lock()
	if c.gen != gen || c.closed {
		// a newer SetURL or Close won; this player never becomes active
		c.mu.Unlock()
		c.logger.Debug("Discarding superseded player", log.String("url", url))
		c.teardown(h)
		return nil
	}
	c.handle = h
	c.st.Attached = true
	volume := c.st.Volume
	c.publishLocked()
	c.mu.Unlock()

	playerSwaps.Add(context.Background(), 1)
	c.logger.Info("Player attached", log.String("url", url), log.Uint64("generation", gen))

	if err := player.SetVolume(volume); err != nil {
		c.logger.Warn("Failed to apply volume to new player", log.Int("volume", volume), log.Error(err))
	}
	return nil
}

// Play starts playback. Its failure is returned and shown to the user since
// it usually means autoplay was refused.
func (c *Controller) Play(ctx context.Context) error {
	h := c.active()
	if h == nil {
		c.setError(noStreamMessage)
		return errors.New(viewer.ErrPlayback, noStreamMessage)
	}

	if err := h.player.Play(ctx); err != nil {
		msg := errors.Message(err)
		if msg == "" {
			msg = playFailedMessage
		}
		c.logger.Warn("Play failed", log.Error(err))
		c.mu.Lock()
		if c.isActiveLocked(h) {
			c.st.ErrorMessage = msg
			c.publishLocked()
		}
		c.mu.Unlock()
		return errors.Wrap(viewer.ErrPlayback, err, playFailedMessage)
	}

	c.mu.Lock()
	if c.isActiveLocked(h) {
		c.st.AutoplayBlocked = false
		c.publishLocked()
	}
	c.mu.Unlock()
	return nil
}

func (c *Controller) Pause() {
	h := c.active()
	if h == nil {
		return
	}
	if err := h.player.Pause(); err != nil {
		c.logger.Warn("Pause failed", log.Error(err))
	}
}

func (c *Controller) SeekToLive(ctx context.Context) {
	h := c.active()
	if h == nil {
		return
	}
	if err := h.player.SeekToLivePosition(ctx); err != nil {
		c.logger.Warn("Seek to live failed", log.Error(err))
	}
}

// SetVolume clamps v to [0,100] and keeps it for later players too.
func (c *Controller) SetVolume(v int) {
	v = max(MinVolume, min(MaxVolume, v))

	c.mu.Lock()
	c.st.Volume = v
	h := c.handle
	c.publishLocked()
	c.mu.Unlock()

	if h == nil {
		return
	}
	if err := h.player.SetVolume(v); err != nil {
		c.logger.Warn("Set volume failed", log.Int("volume", v), log.Error(err))
	}
}

// SelectLayer switches to the layer whose URL is exactly url. Unknown URLs
// are ignored without touching the player.
func (c *Controller) SelectLayer(url string) {
	c.mu.Lock()
	h := c.handle
	idx := slices.IndexFunc(c.st.Layers, func(l viewer.Layer) bool { return l.URL == url })
	var layer viewer.Layer
	if idx >= 0 {
		layer = c.st.Layers[idx]
	}
	c.mu.Unlock()

	if h == nil || idx < 0 {
		c.logger.Debug("Ignoring unknown layer", log.String("url", url))
		return
	}
	if err := h.player.SetLayer(layer); err != nil {
		c.logger.Warn("Set layer failed", log.String("url", url), log.Error(err))
	}
}

// Close tears the player down for good.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	old := c.detachLocked()
	c.gen++
	c.publishLocked()
	c.mu.Unlock()

	c.teardown(old)
}

func (c *Controller) eventHandler(gen uint64) func(viewer.PlayerEvent) {
	return func(ev viewer.PlayerEvent) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.closed || c.gen != gen {
			return
		}
		c.applyLocked(ev)
		c.publishLocked()
	}
}

func (c *Controller) applyLocked(ev viewer.PlayerEvent) {
	switch e := ev.(type) {
	case viewer.ErrorEvent:
		c.st.ErrorMessage = errorMessage(e)
		playerErrors.Add(context.Background(), 1)
		c.logger.Warn("Player error",
			log.String("description", e.Description),
			log.String("message", e.Message),
			log.Bool("fatal", e.Fatal))
	case viewer.PlaybackStateEvent:
		c.st.Paused = e.Paused
	case viewer.AutoplayBlockedEvent:
		c.st.AutoplayBlocked = true
	case viewer.LiveEdgeEvent:
		c.st.IsLive = e.IsLive
	case viewer.ManifestLoadedEvent:
		c.st.Layers = slices.Clone(e.Layers)
		if c.st.Layers == nil {
			c.st.Layers = []viewer.Layer{}
		}
	case viewer.LayerUpdatedEvent:
		c.st.CurrentLayer = c.findLayerLocked(e.Layer)
	default:
		c.logger.Debug("Unhandled player event", log.String("kind", fmt.Sprintf("%T", ev)))
	}
}

// findLayerLocked returns the listed layer with the same URL. A layer that is
// not listed yields nil: the current layer is always an element of Layers.
func (c *Controller) findLayerLocked(l *viewer.Layer) *viewer.Layer {
	if l == nil {
		return nil
	}
	for i := range c.st.Layers {
		if c.st.Layers[i].URL == l.URL {
			found := c.st.Layers[i]
			return &found
		}
	}
	return nil
}

func errorMessage(e viewer.ErrorEvent) string {
	switch {
	case e.Description != "":
		return e.Description
	case e.Message != "":
		return e.Message
	default:
		return genericErrorMessage
	}
}

func (c *Controller) active() *handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle
}

func (c *Controller) isActiveLocked(h *handle) bool {
	return c.handle != nil && c.handle.gen == h.gen
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.st.ErrorMessage = msg
	c.publishLocked()
	c.mu.Unlock()
}

// detachLocked drops the active handle and returns it for teardown.
func (c *Controller) detachLocked() *handle {
	h := c.handle
	c.handle = nil
	c.st.Attached = false
	return h
}

// teardown removes the listeners, pauses and destroys h. Failures are
// logged only.
func (c *Controller) teardown(h *handle) {
	if h == nil {
		return
	}
	for kind, id := range h.listeners {
		h.player.Off(kind, id)
	}
	if err := h.player.Pause(); err != nil {
		c.logger.Debug("Pause on teardown failed", log.Error(err))
	}
	if err := h.player.Destroy(); err != nil {
		c.logger.Debug("Destroy on teardown failed", log.Error(err))
	}
}

func (c *Controller) publishLocked() {
	st := c.st
	st.Layers = slices.Clone(c.st.Layers)
	c.state.Set(st)
}
