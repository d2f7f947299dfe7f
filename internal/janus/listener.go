package janus

import (
	"context"
	"sync"

	"github.com/imtaco/live-viewer/internal/errors"
)

// listenerInstance is a receive-only AudioBridge participant.
type listenerInstance struct {
	*baseInstance

	// events read while waiting for our own "joined"; handed out first by GetEvents
	pendingMu sync.Mutex
	pending   []*JanusResponse
}

func newListenerInstance(api *apiImpl, clientID string, sessionID int64, handleID int64) Listener {
	return &listenerInstance{
		baseInstance: newBaseInstance(api, clientID, sessionID, handleID),
	}
}

// Join joins the room and waits for the plugin's "joined" notification,
// which arrives either inline or on the session's event queue.
func (l *listenerInstance) Join(ctx context.Context, req JoinRequest) (*JoinedEvent, error) {
	req.Request = "join"
	resp, err := l.postMessage(ctx, req)
	if err != nil {
		return nil, err
	}
	if joined, ok := decodeJoined(resp); ok {
		return joined, nil
	}

	for {
		events, err := l.baseInstance.GetEvents(ctx, 0)
		if err != nil {
			return nil, err
		}
		for i, ev := range events {
			if ev.Sender != 0 && ev.Sender != l.handleID {
				continue
			}
			if code, reason, failed := pluginError(ev); failed {
				return nil, errors.Newf(ErrPluginError, "audiobridge join error %d: %s", code, reason)
			}
			if ev.Janus == "timeout" {
				return nil, errors.New(ErrNoneSuccessResponse, "janus session timed out")
			}
			if joined, ok := decodeJoined(ev); ok {
				l.stash(events[i+1:])
				return joined, nil
			}
			l.stash(events[i : i+1])
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(ErrFailedRequest, err, "waiting for joined")
		}
	}
}

func (l *listenerInstance) Configure(ctx context.Context, muted bool) error {
	_, err := l.postMessage(ctx, ConfigureRequest{Request: "configure", Muted: muted})
	return err
}

func (l *listenerInstance) Leave(ctx context.Context) error {
	_, err := l.postMessage(ctx, LeaveRequest{Request: "leave"})
	return err
}

func (l *listenerInstance) GetEvents(ctx context.Context, maxEvents int) ([]*JanusResponse, error) {
	l.pendingMu.Lock()
	if len(l.pending) > 0 {
		events := l.pending
		l.pending = nil
		l.pendingMu.Unlock()
		return events, nil
	}
	l.pendingMu.Unlock()
	return l.baseInstance.GetEvents(ctx, maxEvents)
}

func (l *listenerInstance) stash(events []*JanusResponse) {
	if len(events) == 0 {
		return
	}
	l.pendingMu.Lock()
	defer l.pendingMu.Unlock()
	l.pending = append(l.pending, events...)
}

func decodeJoined(resp *JanusResponse) (*JoinedEvent, bool) {
	if resp == nil || resp.Plugindata == nil {
		return nil, false
	}
	var joined JoinedEvent
	if err := resp.DecodePluginData(&joined); err != nil {
		return nil, false
	}
	if joined.AudioBridge != AudioBridgeJoined {
		return nil, false
	}
	return &joined, true
}
