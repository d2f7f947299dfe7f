package janus

import (
	"context"
	"encoding/json"

	"github.com/imtaco/live-viewer/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_janus.go -package=mocks github.com/imtaco/live-viewer/internal/janus API,Listener

type API interface {
	// CreateListenerInstance opens a fresh session and AudioBridge handle.
	CreateListenerInstance(ctx context.Context, clientID string) (Listener, error)
}

// Listener is an AudioBridge participant that joins rooms without sending media.
type Listener interface {
	Base
	Join(ctx context.Context, req JoinRequest) (*JoinedEvent, error)
	Configure(ctx context.Context, muted bool) error
	Leave(ctx context.Context) error
}

type Base interface {
	GetSessionID() int64
	GetHandleID() int64
	GetEvents(ctx context.Context, maxEvents int) ([]*JanusResponse, error)
	Destroy(ctx context.Context) error
	KeepAlive(ctx context.Context) error
	StartKeepalive()
	StopKeepalive()
}

// JanusResponse models the subset of Janus fields this client cares about.
type JanusResponse struct {
	Janus      string           `json:"janus"`
	SessionID  int64            `json:"session_id,omitempty"`
	Sender     int64            `json:"sender,omitempty"`
	Data       *JanusData       `json:"data,omitempty"`
	Error      *JanusError      `json:"error,omitempty"`
	Plugindata *JanusPluginData `json:"plugindata,omitempty"`
}

// JanusData contains Janus identifiers present in many responses.
type JanusData struct {
	ID int64 `json:"id"`
}

// JanusError is the core-level error object ("janus": "error").
type JanusError struct {
	Code   int    `json:"code"`
	Reason string `json:"reason"`
}

// JanusPluginData wraps plugin-specific payloads.
type JanusPluginData struct {
	Plugin string          `json:"plugin,omitempty"`
	Data   json.RawMessage `json:"data"`
}

// DecodePluginData unmarshals the plugin data payload into v.
func (r *JanusResponse) DecodePluginData(v any) error {
	if r == nil || r.Plugindata == nil {
		return errors.New(ErrInvalidResponse, "plugin data unavailable")
	}
	if len(r.Plugindata.Data) == 0 {
		return errors.New(ErrInvalidResponse, "plugin data empty")
	}
	return json.Unmarshal(r.Plugindata.Data, v)
}

func checkSuccess(resp *JanusResponse) error {
	if resp == nil {
		return errors.Newf(ErrInvalidResponse, "janus is nil")
	}
	if resp.Janus == "success" || resp.Janus == "ack" || resp.Janus == "event" {
		if code, reason, ok := pluginError(resp); ok {
			return errors.Newf(ErrPluginError, "audiobridge error %d: %s", code, reason)
		}
		return nil
	}
	if resp.Error != nil {
		return errors.Newf(ErrNoneSuccessResponse, "janus error %d: %s", resp.Error.Code, resp.Error.Reason)
	}
	return errors.Newf(ErrNoneSuccessResponse, "janus not success: %s", resp.Janus)
}

func pluginError(resp *JanusResponse) (int, string, bool) {
	if resp == nil || resp.Plugindata == nil || len(resp.Plugindata.Data) == 0 {
		return 0, "", false
	}
	var payload struct {
		ErrorCode int    `json:"error_code"`
		Error     string `json:"error"`
	}
	if err := json.Unmarshal(resp.Plugindata.Data, &payload); err != nil {
		return 0, "", false
	}
	if payload.ErrorCode == 0 {
		return 0, "", false
	}
	return payload.ErrorCode, payload.Error, true
}

// Request structs for AudioBridge plugin

// JoinRequest represents an AudioBridge join request.
type JoinRequest struct {
	Request string `json:"request"`
	Room    int64  `json:"room"`
	Display string `json:"display,omitempty"`
	Muted   bool   `json:"muted"`
	Pin     string `json:"pin,omitempty"`
	Token   string `json:"token,omitempty"`
}

// ConfigureRequest changes the local participant's mute state.
type ConfigureRequest struct {
	Request string `json:"request"`
	Muted   bool   `json:"muted"`
}

// LeaveRequest represents an AudioBridge leave request.
type LeaveRequest struct {
	Request string `json:"request"`
}

// Event payloads

// Participant is one entry of an AudioBridge participants list.
type Participant struct {
	ID      int64  `json:"id"`
	Display string `json:"display,omitempty"`
	Setup   bool   `json:"setup"`
	Muted   bool   `json:"muted"`
}

// JoinedEvent is the plugin payload acknowledging our own join.
type JoinedEvent struct {
	AudioBridge  string        `json:"audiobridge"`
	Room         int64         `json:"room"`
	ID           int64         `json:"id"`
	Participants []Participant `json:"participants,omitempty"`
}

// RoomEvent covers the asynchronous AudioBridge notifications: participant
// updates, a participant leaving, and the room being destroyed.
type RoomEvent struct {
	AudioBridge  string        `json:"audiobridge"`
	Room         int64         `json:"room"`
	Participants []Participant `json:"participants,omitempty"`
	Leaving      *int64        `json:"leaving,omitempty"`
}

const (
	AudioBridgeJoined    = "joined"
	AudioBridgeEvent     = "event"
	AudioBridgeDestroyed = "destroyed"
	AudioBridgeLeft      = "left"
)
