package transport_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer"
	"github.com/imtaco/live-viewer/viewer/mocks"
	"github.com/imtaco/live-viewer/viewer/phase"
	"github.com/imtaco/live-viewer/viewer/transport"
	"github.com/imtaco/live-viewer/viewer/view"
)

type RouterSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	viewer   *mocks.MockViewer
	snapshot *observable.Value[view.Snapshot]
	router   *transport.Router
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.viewer = mocks.NewMockViewer(s.ctrl)
	s.snapshot = observable.New(view.Snapshot{
		Phase:  phase.Upcoming,
		Render: view.RenderWaiting,
		Layers: []view.LayerOption{},
	}, nil)
	s.viewer.EXPECT().Snapshot().Return(s.snapshot).AnyTimes()
	s.router = transport.NewRouter(s.viewer, []string{"*"}, log.NewTest(s.T()))
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.Handler().ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *RouterSuite) TestHealthCheck() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", s.decode(w)["status"])
}

func (s *RouterSuite) TestGetState() {
	w := s.do(http.MethodGet, "/api/state", nil)
	s.Equal(http.StatusOK, w.Code)

	out := s.decode(w)
	s.Equal("upcoming", out["phase"])
	s.Equal("waiting", out["render"])
}

func (s *RouterSuite) TestLoad() {
	s.viewer.EXPECT().Load(gomock.Any(), "https://live.example.com/streaming/meeting/abc").
		DoAndReturn(func(context.Context, string) error {
			s.snapshot.Set(view.Snapshot{Phase: phase.Live, RoomCode: "abc"})
			return nil
		})

	w := s.do(http.MethodPost, "/api/load", map[string]string{"input": "https://live.example.com/streaming/meeting/abc"})
	s.Equal(http.StatusOK, w.Code)
	s.Equal("abc", s.decode(w)["roomCode"])
}

func (s *RouterSuite) TestLoadValidation() {
	w := s.do(http.MethodPost, "/api/load", map[string]string{})
	s.Equal(http.StatusBadRequest, w.Code)

	out := s.decode(w)
	s.Equal("Validation failed", out["error"])
	s.NotEmpty(out["details"])

	w = s.do(http.MethodPost, "/api/load", map[string]string{"input": strings.Repeat("a", 2049)})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestLoadErrors() {
	tests := []struct {
		err    error
		status int
	}{
		{errors.New(viewer.ErrInvalidInput, "invalid room url or code"), http.StatusBadRequest},
		{errors.Wrap(viewer.ErrToken, errors.PureNew("unknown code"), "get auth token"), http.StatusBadGateway},
		{errors.Wrap(viewer.ErrConnection, errors.PureNew("refused"), "join room"), http.StatusBadGateway},
		{errors.New(viewer.ErrDisposed, "session closed"), http.StatusServiceUnavailable},
		{errors.PureNew("unexpected"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.viewer.EXPECT().Load(gomock.Any(), "abc").Return(tt.err)
		w := s.do(http.MethodPost, "/api/load", map[string]string{"input": "abc"})
		s.Equal(tt.status, w.Code, tt.err.Error())

		out := s.decode(w)
		s.Equal(false, out["success"])
		s.NotEmpty(out["error"])
	}
}

func (s *RouterSuite) TestLeave() {
	s.viewer.EXPECT().Leave(gomock.Any())
	w := s.do(http.MethodPost, "/api/leave", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestPlay() {
	s.viewer.EXPECT().Play(gomock.Any()).Return(nil)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/player/play", nil).Code)

	s.viewer.EXPECT().Play(gomock.Any()).Return(errors.New(viewer.ErrPlayback, "no stream loaded"))
	w := s.do(http.MethodPost, "/api/player/play", nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("no stream loaded", s.decode(w)["error"])
}

func (s *RouterSuite) TestPauseAndSeek() {
	s.viewer.EXPECT().Pause()
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/player/pause", nil).Code)

	s.viewer.EXPECT().SeekToLive(gomock.Any())
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/player/seek-live", nil).Code)
}

func (s *RouterSuite) TestSetVolume() {
	s.viewer.EXPECT().SetVolume(150)
	s.Equal(http.StatusOK, s.do(http.MethodPut, "/api/player/volume", map[string]int{"volume": 150}).Code)

	s.viewer.EXPECT().SetVolume(0)
	s.Equal(http.StatusOK, s.do(http.MethodPut, "/api/player/volume", map[string]int{"volume": 0}).Code)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPut, "/api/player/volume", map[string]int{}).Code)
}

func (s *RouterSuite) TestSelectLayer() {
	s.viewer.EXPECT().SelectLayer("https://cdn.example.com/720.m3u8")
	w := s.do(http.MethodPut, "/api/player/layer", map[string]string{"url": "https://cdn.example.com/720.m3u8"})
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPut, "/api/player/layer", map[string]string{"url": "not a url"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestCORSPreflight() {
	req, _ := http.NewRequest(http.MethodOptions, "/api/load", nil)
	req.Header.Set("Origin", "https://viewer.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	s.router.Handler().ServeHTTP(w, req)

	s.Equal(http.StatusNoContent, w.Code)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func (s *RouterSuite) TestEventStream() {
	server := httptest.NewServer(s.router.Handler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/api/events", nil)
	s.Require().NoError(err)
	defer conn.CloseNow()

	var snap view.Snapshot
	s.Require().NoError(wsjson.Read(ctx, conn, &snap))
	s.Equal(phase.Upcoming, snap.Phase)

	// the handler subscribes before its first write, so this change is seen
	s.snapshot.Set(view.Snapshot{Phase: phase.Live, Render: view.RenderHLS, StreamURL: "https://cdn.example.com/a.m3u8"})
	s.Require().NoError(wsjson.Read(ctx, conn, &snap))
	s.Equal(phase.Live, snap.Phase)
	s.Equal("https://cdn.example.com/a.m3u8", snap.StreamURL)

	s.NoError(conn.Close(websocket.StatusNormalClosure, ""))
}

func (s *RouterSuite) dialEvents(router *transport.Router, origin string) error {
	server := httptest.NewServer(router.Handler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(server.URL, "http")+"/api/events", &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{origin}},
	})
	if err != nil {
		return err
	}
	defer conn.CloseNow()

	var snap view.Snapshot
	return wsjson.Read(ctx, conn, &snap)
}

func (s *RouterSuite) TestEmptyOriginListAllowsAll() {
	router := transport.NewRouter(s.viewer, nil, log.NewTest(s.T()))

	req, _ := http.NewRequest(http.MethodOptions, "/api/load", nil)
	req.Header.Set("Origin", "https://viewer.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.Handler().ServeHTTP(w, req)
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))

	s.NoError(s.dialEvents(router, "https://viewer.example.com"))
}

func (s *RouterSuite) TestOriginListAppliesToEvents() {
	router := transport.NewRouter(s.viewer, []string{"https://viewer.example.com"}, log.NewTest(s.T()))

	s.NoError(s.dialEvents(router, "https://viewer.example.com"))
	s.Error(s.dialEvents(router, "https://other.example.com"))
}
