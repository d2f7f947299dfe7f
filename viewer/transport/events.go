package transport

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"

	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/viewer/view"
)

const (
	pingInterval = 10 * time.Second
	pingTimeout  = 3 * time.Second
	writeTimeout = 3 * time.Second
)

// streamEvents pushes the current snapshot and then every change over a
// websocket. Slow clients skip intermediate snapshots and only see the
// latest one.
func (r *Router) streamEvents(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: r.wsOrigins,
	})
	if err != nil {
		r.logger.Warn("WebSocket open failed",
			log.String("remote_addr", c.Request.RemoteAddr),
			log.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx := conn.CloseRead(c.Request.Context())
	eventStreams.Add(ctx, 1)
	defer eventStreams.Add(context.WithoutCancel(ctx), -1)

	latest := make(chan view.Snapshot, 1)
	unsub := r.viewer.Snapshot().Subscribe(func(s view.Snapshot) {
		for {
			select {
			case latest <- s:
				return
			default:
			}
			select {
			case <-latest:
			default:
			}
		}
	})
	defer unsub()

	r.logger.Debug("Event stream opened", log.String("remote_addr", c.Request.RemoteAddr))

	if err := r.push(ctx, conn, r.viewer.Snapshot().Get()); err != nil {
		r.closeStream(conn, err)
		return
	}

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeStream(conn, ctx.Err())
			return
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, pingTimeout)
			err := conn.Ping(pctx)
			cancel()
			if err != nil {
				r.closeStream(conn, err)
				return
			}
		case s := <-latest:
			if err := r.push(ctx, conn, s); err != nil {
				r.closeStream(conn, err)
				return
			}
		}
	}
}

func (r *Router) push(ctx context.Context, conn *websocket.Conn, s view.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, s); err != nil {
		return err
	}
	snapshotsSent.Add(ctx, 1)
	return nil
}

func (r *Router) closeStream(conn *websocket.Conn, err error) {
	if websocket.CloseStatus(err) != -1 {
		r.logger.Debug("Event stream closed by peer", log.Any("code", websocket.CloseStatus(err)))
		return
	}
	r.logger.Debug("Event stream closed", log.Error(err))
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
}
