// Package session drives one viewer session: room code resolution, token
// acquisition and the listen-only room join.
package session

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer"
	"github.com/imtaco/live-viewer/viewer/roomcode"
)

const (
	invalidInputMessage = "invalid room url or code"
	directURLNotice     = "direct HLS playback (room not joined)"
)

// State is the session as the view sees it.
type State struct {
	RoomCode     string                 `json:"roomCode,omitempty"`
	Connection   viewer.ConnectionState `json:"connection"`
	AuthToken    string                 `json:"-"`
	IsConnecting bool                   `json:"isConnecting"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
	StreamURL    string                 `json:"streamUrl,omitempty"`
	Notice       string                 `json:"notice,omitempty"`
}

// Controller serializes loads against one room. Every Load and Leave bumps
// a generation; results of an await that finishes under an older generation
// are dropped.
type Controller struct {
	tokens viewer.TokenIssuer
	room   viewer.Room
	cfg    *Config
	logger *log.Logger

	mu       sync.Mutex
	st       State
	gen      uint64
	disposed bool
	unsubs   []func()
	onStart  func()

	state *observable.Value[State]
}

func NewController(tokens viewer.TokenIssuer, room viewer.Room, cfg *Config, logger *log.Logger) *Controller {
	initial := State{Connection: room.ConnectionState().Get()}
	c := &Controller{
		tokens: tokens,
		room:   room,
		cfg:    cfg,
		logger: logger,
		st:     initial,
		state:  observable.NewComparable(initial),
	}
	c.unsubs = []func(){
		room.ConnectionState().Subscribe(c.onConnection),
		room.RoomInfo().Subscribe(c.onRoomInfo),
	}
	return c
}

func (c *Controller) State() observable.Observable[State] {
	return c.state
}

// OnSessionStart registers fn to run each time a Load passes input
// validation and starts a new session.
func (c *Controller) OnSessionStart(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStart = fn
}

// Load resolves input to a room code, fetches a token and joins the room
// listen-only. A Load while another one is connecting is ignored.
func (c *Controller) Load(ctx context.Context, input string) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return errors.New(viewer.ErrDisposed, "session closed")
	}
	if c.st.IsConnecting {
		c.mu.Unlock()
		c.logger.Debug("Load ignored, already connecting")
		return nil
	}

	code := roomcode.Extract(input)
	if code == "" {
		c.st.ErrorMessage = invalidInputMessage
		c.publishLocked()
		c.mu.Unlock()
		c.countFailure(ctx, viewer.ErrInvalidInput)
		return errors.New(viewer.ErrInvalidInput, invalidInputMessage)
	}

	c.gen++
	gen := c.gen
	c.st.RoomCode = code
	c.st.IsConnecting = true
	c.st.ErrorMessage = ""
	c.st.Notice = ""
	c.publishLocked()
	onStart := c.onStart
	c.mu.Unlock()

	if onStart != nil {
		onStart()
	}

	loads.Add(ctx, 1)
	logger := c.logger.With(log.String("roomCode", code), log.Uint64("generation", gen))
	logger.Info("Loading room")

	token, err := c.tokens.AuthTokenByRoomCode(ctx, code)
	if err != nil {
		return c.fail(ctx, gen, errors.Wrap(viewer.ErrToken, err, "get auth token"))
	}
	if !c.update(gen, func(st *State) { st.AuthToken = token }) {
		logger.Debug("Discarding token for a stale load")
		return nil
	}

	if c.room.ConnectionState().Get() != viewer.ConnectionConnected {
		if err := c.join(ctx, token); err != nil {
			if c.cfg.Fallback == FallbackDirectURL {
				logger.Warn("Join failed, using direct stream URL", log.Error(err))
				c.update(gen, func(st *State) {
					st.StreamURL = c.cfg.DirectStreamURL(code)
					st.Notice = directURLNotice
					st.IsConnecting = false
				})
				return nil
			}
			return c.fail(ctx, gen, errors.Wrap(viewer.ErrConnection, err, "join room"))
		}

		if !c.current(gen) {
			// joined for a session that was left meanwhile
			logger.Info("Leaving room joined by a stale load")
			if err := c.room.Leave(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("Failed to leave stale room", log.Error(err))
			}
			return nil
		}
		c.muteLocal(ctx)
	}

	c.update(gen, func(st *State) { st.IsConnecting = false })
	logger.Info("Room loaded")
	return nil
}

// Leave disconnects from the room when connected and always resets the
// session. Failures are logged only.
func (c *Controller) Leave(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	c.resetLocked()
	c.publishLocked()
	c.mu.Unlock()

	c.leaveRoom(ctx)
}

// Close leaves the room and stops tracking it. Later calls to Load fail with
// ErrDisposed.
func (c *Controller) Close(ctx context.Context) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	c.gen++
	c.resetLocked()
	c.publishLocked()
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	c.leaveRoom(ctx)
	for _, unsub := range unsubs {
		unsub()
	}
}

func (c *Controller) join(ctx context.Context, token string) error {
	return c.room.Join(ctx, viewer.JoinOptions{
		UserName:  c.cfg.UserName,
		AuthToken: token,
		Settings: &viewer.JoinSettings{
			AudioMuted: true,
			VideoMuted: true,
		},
	})
}

// muteLocal disables local capture again right after the join.
func (c *Controller) muteLocal(ctx context.Context) {
	if err := c.room.SetLocalAudioEnabled(ctx, false); err != nil {
		c.logger.Warn("Failed to disable local audio", log.Error(err))
	}
	if err := c.room.SetLocalVideoEnabled(ctx, false); err != nil {
		c.logger.Warn("Failed to disable local video", log.Error(err))
	}
}

func (c *Controller) leaveRoom(ctx context.Context) {
	if c.room.ConnectionState().Get() != viewer.ConnectionConnected {
		return
	}
	if err := c.room.Leave(ctx); err != nil {
		c.logger.Warn("Failed to leave room", log.Error(err))
		return
	}
	c.logger.Info("Left room")
}

// fail publishes err as the user-facing message if gen is still current.
func (c *Controller) fail(ctx context.Context, gen uint64, err error) error {
	code := errors.CodeOf(err)
	c.countFailure(ctx, code)
	if !c.update(gen, func(st *State) {
		st.IsConnecting = false
		st.ErrorMessage = errors.Message(err)
	}) {
		c.logger.Debug("Discarding failure of a stale load", log.Error(err))
		return nil
	}
	c.logger.Warn("Load failed", log.String("kind", string(code)), log.Error(err))
	return err
}

func (c *Controller) countFailure(ctx context.Context, code errors.Code) {
	loadFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(code))))
}

// update applies fn and publishes when gen is current. It reports whether
// the update was applied.
func (c *Controller) update(gen uint64, fn func(*State)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || c.gen != gen {
		return false
	}
	fn(&c.st)
	c.publishLocked()
	return true
}

func (c *Controller) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.disposed && c.gen == gen
}

func (c *Controller) onConnection(s viewer.ConnectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.Connection = s
	c.publishLocked()
}

func (c *Controller) onRoomInfo(info viewer.RoomInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || c.st.RoomCode == "" {
		return
	}
	if len(info.HLSVariants) == 0 {
		if c.st.Notice == "" {
			c.st.StreamURL = ""
		}
	} else {
		c.st.StreamURL = info.HLSVariants[0].URL
		c.st.Notice = ""
	}
	c.publishLocked()
}

func (c *Controller) resetLocked() {
	c.st = State{Connection: c.st.Connection}
}

func (c *Controller) publishLocked() {
	c.state.Set(c.st)
}
