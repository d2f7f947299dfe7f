// Package janusroom implements viewer.Room on top of a janus AudioBridge
// room joined as a muted listener.
package janusroom

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/internal/constants"
	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/janus"
	"github.com/imtaco/live-viewer/internal/jwt"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer"
)

type Config struct {
	// HLSURLTemplate builds the room's stream URL. {room_id} and
	// {janus_room} are substituted from the token claims.
	HLSURLTemplate string        `mapstructure:"hls_url_template"`
	TokenSecret    string        `mapstructure:"token_secret"`
	MaxEvents      int           `mapstructure:"max_events"`
	PollFailures   int           `mapstructure:"poll_failures"`
	PollBackoff    time.Duration `mapstructure:"poll_backoff"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("hls_url_template"), "")
	v.SetDefault(p("token_secret"), "")
	v.SetDefault(p("max_events"), 10)
	v.SetDefault(p("poll_failures"), 3)
	v.SetDefault(p("poll_backoff"), "1s")
}

// Room is a listen-only janus participant exposed as a viewer.Room.
type Room struct {
	api    janus.API
	cfg    *Config
	auth   jwt.Auth
	clock  clockwork.Clock
	logger *log.Logger

	conn  *observable.Value[viewer.ConnectionState]
	info  *observable.Value[viewer.RoomInfo]
	peers *observable.Value[[]viewer.Peer]

	mu       sync.Mutex
	listener janus.Listener
	self     viewer.Peer
	remote   []viewer.Peer
	stopPoll context.CancelFunc
	pollDone chan struct{}
}

var _ viewer.Room = (*Room)(nil)

func New(api janus.API, cfg *Config, logger *log.Logger) *Room {
	return newWithClock(api, cfg, clockwork.NewRealClock(), logger)
}

func newWithClock(api janus.API, cfg *Config, clock clockwork.Clock, logger *log.Logger) *Room {
	r := &Room{
		api:    api,
		cfg:    cfg,
		clock:  clock,
		logger: logger,
		conn:   observable.NewComparable(viewer.ConnectionDisconnected),
		info:   observable.New(viewer.RoomInfo{}, nil),
		peers:  observable.New[[]viewer.Peer](nil, nil),
	}
	if cfg.TokenSecret != "" {
		r.auth = jwt.NewAuth(cfg.TokenSecret)
	}
	return r
}

func (r *Room) ConnectionState() observable.Observable[viewer.ConnectionState] {
	return r.conn
}

func (r *Room) RoomInfo() observable.Observable[viewer.RoomInfo] {
	return r.info
}

func (r *Room) Peers() observable.Observable[[]viewer.Peer] {
	return r.peers
}

// Join enters the AudioBridge room named by the token's claims. The token is
// forwarded to janus, which does the actual authorization.
func (r *Room) Join(ctx context.Context, opts viewer.JoinOptions) error {
	claims, err := r.claims(opts.AuthToken)
	if err != nil {
		return errors.Wrap(viewer.ErrConnection, err, "read token claims")
	}
	if claims.JanusRoom == 0 {
		return errors.New(viewer.ErrConnection, "token carries no janus room")
	}

	// a previous session that ended on its own may still hold a handle
	r.release(ctx)

	logger := r.logger.With(log.String("roomId", claims.RoomID), log.Int64("janusRoom", claims.JanusRoom))
	r.conn.Set(viewer.ConnectionConnecting)

	listener, err := r.api.CreateListenerInstance(ctx, claims.UserID)
	if err != nil {
		r.conn.Set(viewer.ConnectionFailed)
		return errors.Wrap(viewer.ErrConnection, err, "create janus session")
	}

	muted := opts.Settings != nil && opts.Settings.AudioMuted
	joined, err := listener.Join(ctx, janus.JoinRequest{
		Room:    claims.JanusRoom,
		Display: opts.UserName,
		Muted:   muted,
		Token:   opts.AuthToken,
	})
	if err != nil {
		if derr := listener.Destroy(context.WithoutCancel(ctx)); derr != nil {
			logger.Warn("Failed to destroy janus session", log.Error(derr))
		}
		r.conn.Set(viewer.ConnectionFailed)
		return errors.Wrap(viewer.ErrConnection, err, "join janus room")
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	r.mu.Lock()
	r.listener = listener
	r.self = viewer.Peer{
		ID:      strconv.FormatInt(joined.ID, 10),
		Name:    opts.UserName,
		IsLocal: true,
	}
	r.remote = nil
	r.upsertLocked(joined.Participants, joined.ID)
	r.stopPoll = cancel
	r.pollDone = done
	r.publishPeersLocked()
	r.mu.Unlock()

	r.info.Set(viewer.RoomInfo{
		RoomID:      claims.RoomID,
		HLSVariants: r.variants(claims),
	})
	r.conn.Set(viewer.ConnectionConnected)
	logger.Info("Joined janus room", log.Int64("participantId", joined.ID))

	listener.StartKeepalive()
	go r.poll(pollCtx, listener, done)
	return nil
}

// Leave leaves the room and drops the janus session.
func (r *Room) Leave(ctx context.Context) error {
	r.mu.Lock()
	listener := r.listener
	r.mu.Unlock()
	if listener == nil {
		return nil
	}

	r.conn.Set(viewer.ConnectionDisconnecting)
	err := listener.Leave(ctx)
	if err != nil {
		r.logger.Warn("Janus leave failed", log.Error(err))
	}
	r.release(ctx)
	r.info.Set(viewer.RoomInfo{})
	r.conn.Set(viewer.ConnectionDisconnected)
	return errors.Wrap(viewer.ErrConnection, err, "leave janus room")
}

// SetLocalAudioEnabled maps to the AudioBridge mute flag.
func (r *Room) SetLocalAudioEnabled(ctx context.Context, enabled bool) error {
	r.mu.Lock()
	listener := r.listener
	r.mu.Unlock()
	if listener == nil {
		return errors.New(viewer.ErrConnection, "not joined")
	}
	return listener.Configure(ctx, !enabled)
}

// SetLocalVideoEnabled is a no-op: AudioBridge carries no video.
func (r *Room) SetLocalVideoEnabled(context.Context, bool) error {
	return nil
}

func (r *Room) claims(token string) (*jwt.RoomClaims, error) {
	if r.auth != nil {
		return r.auth.Verify(token)
	}
	return jwt.Decode(token)
}

func (r *Room) variants(claims *jwt.RoomClaims) []viewer.HLSVariant {
	if r.cfg.HLSURLTemplate == "" {
		return nil
	}
	url := strings.NewReplacer(
		"{room_id}", claims.RoomID,
		"{janus_room}", strconv.FormatInt(claims.JanusRoom, 10),
	).Replace(r.cfg.HLSURLTemplate)

	now := r.clock.Now()
	return []viewer.HLSVariant{{URL: url, StartedAt: &now}}
}

// release stops polling and destroys the current janus session, if any.
func (r *Room) release(ctx context.Context) {
	r.mu.Lock()
	listener := r.listener
	stop, done := r.stopPoll, r.pollDone
	r.listener = nil
	r.stopPoll, r.pollDone = nil, nil
	r.remote = nil
	r.self = viewer.Peer{}
	r.publishPeersLocked()
	r.mu.Unlock()

	if listener == nil {
		return
	}
	if stop != nil {
		stop()
		<-done
	}
	if err := listener.Destroy(context.WithoutCancel(ctx)); err != nil {
		r.logger.Warn("Failed to destroy janus session", log.Error(err))
	}
}

func (r *Room) poll(ctx context.Context, listener janus.Listener, done chan struct{}) {
	defer close(done)

	failures := 0
	for {
		events, err := listener.GetEvents(ctx, r.cfg.MaxEvents)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			failures++
			r.logger.Warn("Janus event poll failed", log.Int("failures", failures), log.Error(err))
			if failures >= max(1, r.cfg.PollFailures) {
				r.lost(listener, "event poll failing")
				return
			}
			select {
			case <-r.clock.After(r.cfg.PollBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}
		failures = 0

		for _, ev := range events {
			if r.handle(listener, ev) {
				return
			}
		}
	}
}

// handle applies one janus event and reports whether the session is over.
func (r *Room) handle(listener janus.Listener, ev *janus.JanusResponse) bool {
	switch ev.Janus {
	case "timeout", "detached":
		r.lost(listener, "janus "+ev.Janus)
		return true
	case "event":
	default:
		return false
	}

	var data janus.RoomEvent
	if err := ev.DecodePluginData(&data); err != nil {
		r.logger.Debug("Skipping janus event", log.Error(err))
		return false
	}

	switch data.AudioBridge {
	case janus.AudioBridgeDestroyed:
		endedAt := r.clock.Now()
		r.info.Update(func(info viewer.RoomInfo) viewer.RoomInfo {
			info.EndedAt = &endedAt
			return info
		})
		r.logger.Info("Janus room destroyed", log.Int64("room", data.Room))
		r.lost(listener, "room destroyed")
		return true
	case janus.AudioBridgeEvent, janus.AudioBridgeJoined:
		r.mu.Lock()
		if r.listener == listener {
			selfID, _ := strconv.ParseInt(r.self.ID, 10, 64)
			r.upsertLocked(data.Participants, selfID)
			if data.Leaving != nil {
				r.removeLocked(strconv.FormatInt(*data.Leaving, 10))
			}
			r.publishPeersLocked()
		}
		r.mu.Unlock()
	}
	return false
}

// lost drops a session that ended on the server side.
func (r *Room) lost(listener janus.Listener, reason string) {
	r.mu.Lock()
	if r.listener != listener {
		r.mu.Unlock()
		return
	}
	r.listener = nil
	r.stopPoll, r.pollDone = nil, nil
	r.remote = nil
	r.self = viewer.Peer{}
	r.publishPeersLocked()
	r.mu.Unlock()

	r.logger.Warn("Janus session lost", log.String("reason", reason))
	if err := listener.Destroy(context.Background()); err != nil {
		r.logger.Debug("Failed to destroy lost janus session", log.Error(err))
	}
	r.conn.Set(viewer.ConnectionDisconnected)
}

func (r *Room) upsertLocked(participants []janus.Participant, selfID int64) {
	for _, p := range participants {
		if p.ID == selfID {
			continue
		}
		peer := toPeer(p)
		if i := slices.IndexFunc(r.remote, func(x viewer.Peer) bool { return x.ID == peer.ID }); i >= 0 {
			r.remote[i] = peer
			continue
		}
		r.remote = append(r.remote, peer)
	}
}

func (r *Room) removeLocked(id string) {
	r.remote = slices.DeleteFunc(r.remote, func(p viewer.Peer) bool { return p.ID == id })
}

func (r *Room) publishPeersLocked() {
	var peers []viewer.Peer
	if r.self.ID != "" {
		peers = append(peers, r.self)
	}
	peers = append(peers, r.remote...)
	r.peers.Set(peers)
}

// toPeer reads the "<role>/<name>" display convention; displays without a
// known role prefix are names only.
func toPeer(p janus.Participant) viewer.Peer {
	peer := viewer.Peer{
		ID:   strconv.FormatInt(p.ID, 10),
		Name: p.Display,
	}
	if role, name, ok := strings.Cut(p.Display, "/"); ok {
		if r, known := constants.ParseUserRole(role); known {
			peer.RoleName = string(r)
			peer.Name = name
		}
	}
	return peer
}
