package janus

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
)

type baseInstance struct {
	api       *apiImpl
	clientID  string
	sessionID int64
	handleID  int64

	keepaliveMu     sync.Mutex
	keepaliveCancel context.CancelFunc
}

func newBaseInstance(api *apiImpl, clientID string, sessionID int64, handleID int64) *baseInstance {
	return &baseInstance{
		api:       api,
		clientID:  clientID,
		sessionID: sessionID,
		handleID:  handleID,
	}
}

func (b *baseInstance) GetSessionID() int64 {
	return b.sessionID
}

func (b *baseInstance) GetHandleID() int64 {
	return b.handleID
}

func (b *baseInstance) path() string {
	return fmt.Sprintf("/janus/%d", b.sessionID)
}

// postMessage posts a plugin message addressed to our handle.
func (b *baseInstance) postMessage(ctx context.Context, body any) (*JanusResponse, error) {
	payload := map[string]any{
		"janus":     "message",
		"handle_id": b.handleID,
		"body":      body,
	}
	return b.api.post(ctx, b.path(), payload)
}

func (b *baseInstance) Destroy(ctx context.Context) error {
	b.StopKeepalive()
	_, err := b.api.post(ctx, b.path(), map[string]any{"janus": "destroy"})
	return err
}

func (b *baseInstance) KeepAlive(ctx context.Context) error {
	_, err := b.api.post(ctx, b.path(), map[string]any{"janus": "keepalive"})
	return err
}

func (b *baseInstance) StartKeepalive() {
	b.keepaliveMu.Lock()
	defer b.keepaliveMu.Unlock()
	if b.keepaliveCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.keepaliveCancel = cancel
	go b.runKeepalive(ctx, b.api.keepaliveInterval)
}

func (b *baseInstance) StopKeepalive() {
	b.keepaliveMu.Lock()
	defer b.keepaliveMu.Unlock()
	if b.keepaliveCancel != nil {
		b.keepaliveCancel()
		b.keepaliveCancel = nil
	}
}

func (b *baseInstance) runKeepalive(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := b.KeepAlive(ctx); err != nil && ctx.Err() == nil {
				b.api.logger.Warn("janus keepalive failed",
					log.String("clientId", b.clientID),
					log.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// GetEvents long-polls the session for up to maxEvents queued events.
func (b *baseInstance) GetEvents(ctx context.Context, maxEvents int) ([]*JanusResponse, error) {
	if maxEvents <= 0 {
		maxEvents = 3
	}
	var payload []*JanusResponse
	resp, err := b.api.client.R().
		SetContext(ctx).
		SetResult(&payload).
		SetQueryParam("maxev", strconv.Itoa(maxEvents)).
		Get(b.api.baseURL + b.path())
	if err != nil {
		return nil, errors.Wrap(ErrFailedRequest, err, "janus long poll")
	}
	if resp.IsError() {
		return nil, errors.Newf(ErrNoneSuccessResponse, "janus http error: (code: %d)", resp.StatusCode())
	}
	b.api.logger.Debug("janus events resp", log.Int("count", len(payload)))
	return payload, nil
}
