package viewer

import (
	"context"
	"io"
	"time"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/observable"
)

//go:generate mockgen -destination=mocks/mock_viewer.go -package=mocks github.com/imtaco/live-viewer/viewer TokenIssuer,Room,Player,PlayerFactory

const (
	ErrInvalidInput errors.Code = "invalid input"
	ErrToken        errors.Code = "token error"
	ErrConnection   errors.Code = "connection error"
	ErrPlayback     errors.Code = "playback error"
	ErrDisposed     errors.Code = "session disposed"
)

// ConnectionState mirrors the real-time room's connection lifecycle.
type ConnectionState string

const (
	ConnectionDisconnected  ConnectionState = "disconnected"
	ConnectionConnecting    ConnectionState = "connecting"
	ConnectionConnected     ConnectionState = "connected"
	ConnectionReconnecting  ConnectionState = "reconnecting"
	ConnectionDisconnecting ConnectionState = "disconnecting"
	ConnectionFailed        ConnectionState = "failed"
)

type JoinSettings struct {
	AudioMuted bool
	VideoMuted bool
}

type JoinOptions struct {
	UserName  string
	AuthToken string
	Settings  *JoinSettings
}

// HLSVariant is one HLS rendition advertised by the room.
type HLSVariant struct {
	URL       string     `json:"url"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
}

// RoomInfo is the room-level state the viewer reacts to.
type RoomInfo struct {
	RoomID      string       `json:"roomId,omitempty"`
	EndedAt     *time.Time   `json:"endedAt,omitempty"`
	HLSVariants []HLSVariant `json:"hlsVariants,omitempty"`
}

// Peer describes a room participant.
type Peer struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	VideoTrack string `json:"videoTrack,omitempty"`
	IsLocal    bool   `json:"isLocal"`
	RoleName   string `json:"roleName,omitempty"`
}

// TokenIssuer exchanges a room code for a room auth token.
type TokenIssuer interface {
	AuthTokenByRoomCode(ctx context.Context, roomCode string) (string, error)
}

// Room is the real-time session collaborator.
type Room interface {
	Join(ctx context.Context, opts JoinOptions) error
	Leave(ctx context.Context) error
	SetLocalAudioEnabled(ctx context.Context, enabled bool) error
	SetLocalVideoEnabled(ctx context.Context, enabled bool) error

	ConnectionState() observable.Observable[ConnectionState]
	RoomInfo() observable.Observable[RoomInfo]
	Peers() observable.Observable[[]Peer]
}

// EventKind names a media player event.
type EventKind string

const (
	EventError           EventKind = "ERROR"
	EventPlaybackState   EventKind = "PLAYBACK_STATE"
	EventAutoplayBlocked EventKind = "AUTOPLAY_BLOCKED"
	EventLiveEdge        EventKind = "SEEK_POS_BEHIND_LIVE_EDGE"
	EventManifestLoaded  EventKind = "MANIFEST_LOADED"
	EventLayerUpdated    EventKind = "LAYER_UPDATED"
)

// PlayerEventKinds lists every kind the playback controller listens to.
var PlayerEventKinds = []EventKind{
	EventError,
	EventPlaybackState,
	EventAutoplayBlocked,
	EventLiveEdge,
	EventManifestLoaded,
	EventLayerUpdated,
}

// Layer is one selectable quality rendition.
type Layer struct {
	URL        string `json:"url"`
	Resolution string `json:"resolution,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Bitrate    int    `json:"bitrate"`
}

// ListenerID identifies a player event subscription.
type ListenerID uint64

// Player is a media player handle bound to one stream URL.
type Player interface {
	On(kind EventKind, handler func(PlayerEvent)) ListenerID
	Off(kind EventKind, id ListenerID)
	Play(ctx context.Context) error
	Pause() error
	SeekToLivePosition(ctx context.Context) error
	SetVolume(volume int) error
	SetLayer(layer Layer) error
	Destroy() error
}

// PlayerFactory builds a player bound to url that renders into sink.
type PlayerFactory interface {
	NewPlayer(url string, sink io.Writer) (Player, error)
}

// PlayerFactoryFunc adapts a function to PlayerFactory.
type PlayerFactoryFunc func(url string, sink io.Writer) (Player, error)

func (f PlayerFactoryFunc) NewPlayer(url string, sink io.Writer) (Player, error) {
	return f(url, sink)
}
