package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/imtaco/live-viewer/hlsproxy"
	"github.com/imtaco/live-viewer/hlsproxy/mocks"
	"github.com/imtaco/live-viewer/hlsproxy/transport"
	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
)

const (
	origin   = "https://origin.example.com"
	manifest = "#EXTM3U\n#EXT-X-VERSION:3\n"
)

type RouterSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockFetcher
	router  *transport.Router
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.router = transport.NewRouter(s.fetcher, origin+"/", log.NewTest(s.T()))
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) serve(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, nil)
	s.router.Handler().ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) assertCORS(w *httptest.ResponseRecorder) {
	s.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func (s *RouterSuite) TestHealthCheck() {
	w := s.serve(http.MethodGet, "/health")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status": "ok"}`, w.Body.String())
}

func (s *RouterSuite) TestProxyByQuery() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/a.m3u8").
		Return(&hlsproxy.Response{
			Status:      http.StatusOK,
			ContentType: "application/x-mpegURL",
			Body:        []byte(manifest),
		}, nil)

	w := s.serve(http.MethodGet, "/api/hls-proxy?url=https%3A%2F%2Fexample.com%2Fa.m3u8")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(manifest, w.Body.String())
	s.Equal("application/x-mpegURL", w.Header().Get("Content-Type"))
	s.assertCORS(w)
}

func (s *RouterSuite) TestProxyByLegacyPath() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), origin+"/streaming/meeting/abc/master.m3u8").
		Return(&hlsproxy.Response{
			Status:      http.StatusOK,
			ContentType: hlsproxy.DefaultContentType,
			Body:        []byte(manifest),
		}, nil)

	w := s.serve(http.MethodGet, "/api/hls-proxy/streaming/meeting/abc/master.m3u8")
	s.Equal(http.StatusOK, w.Code)
	s.Equal(hlsproxy.DefaultContentType, w.Header().Get("Content-Type"))
	s.assertCORS(w)
}

func (s *RouterSuite) TestLegacyPathKeepsQuery() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), origin+"/hls/seg1.ts?token=t1").
		Return(&hlsproxy.Response{Status: http.StatusOK, ContentType: "video/mp2t"}, nil)

	w := s.serve(http.MethodGet, "/api/hls-proxy/hls/seg1.ts?token=t1")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestLegacyPathKeepsEscapes() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), origin+"/hls/room%20a/sub%2Fseg1.ts").
		Return(&hlsproxy.Response{Status: http.StatusOK, ContentType: "video/mp2t"}, nil)

	w := s.serve(http.MethodGet, "/api/hls-proxy/hls/room%20a/sub%2Fseg1.ts")
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestMissingTarget() {
	for _, target := range []string{"/api/hls-proxy", "/api/hls-proxy/", "/api/hls-proxy?url="} {
		w := s.serve(http.MethodGet, target)
		s.Equal(http.StatusBadRequest, w.Code, target)
		s.assertCORS(w)
	}
}

func (s *RouterSuite) TestUpstreamStatus() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/missing.m3u8").
		Return(&hlsproxy.Response{Status: http.StatusNotFound, ContentType: "text/plain"},
			errors.New(hlsproxy.ErrUpstreamStatus, "upstream returned 404"))

	w := s.serve(http.MethodGet, "/api/hls-proxy?url=https%3A%2F%2Fexample.com%2Fmissing.m3u8")
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error": "Failed to fetch HLS content: 404"}`, w.Body.String())
}

func (s *RouterSuite) TestUpstreamNetwork() {
	s.fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/a.m3u8").
		Return(nil, errors.New(hlsproxy.ErrUpstreamNetwork, "connection refused"))

	w := s.serve(http.MethodGet, "/api/hls-proxy?url=https%3A%2F%2Fexample.com%2Fa.m3u8")
	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"error": "Failed to fetch HLS content"}`, w.Body.String())
}

func (s *RouterSuite) TestPreflight() {
	for _, target := range []string{
		"/api/hls-proxy?url=https%3A%2F%2Fexample.com%2Fa.m3u8",
		"/api/hls-proxy/streaming/meeting/abc/master.m3u8",
	} {
		w := s.serve(http.MethodOptions, target)
		s.Equal(http.StatusOK, w.Code, target)
		s.Empty(w.Body.String())
		s.assertCORS(w)
	}
}
