package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/imtaco/live-viewer/hlsproxy"
	"github.com/imtaco/live-viewer/hlsproxy/upstream"
	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
)

const playlist = "#EXTM3U\n#EXT-X-TARGETDURATION:2\n#EXTINF:2.0,\nseg1.ts\n"

type FetcherSuite struct {
	suite.Suite
	ctx     context.Context
	hits    atomic.Int32
	release chan struct{}
	server  *httptest.Server
	fetcher *upstream.Fetcher
}

func TestFetcherSuite(t *testing.T) {
	suite.Run(t, new(FetcherSuite))
}

func (s *FetcherSuite) SetupTest() {
	s.ctx = context.Background()
	s.hits.Store(0)
	s.release = make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("/live/slow.m3u8", func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		<-s.release
		_, _ = w.Write([]byte(playlist))
	})
	mux.HandleFunc("/live/index.m3u8", func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		w.Header().Set("Content-Type", "application/x-mpegURL")
		_, _ = w.Write([]byte(playlist))
	})
	mux.HandleFunc("/live/bare.m3u8", func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		w.Header()["Content-Type"] = nil
		_, _ = w.Write([]byte(playlist))
	})
	mux.HandleFunc("/live/seg1.ts", func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		w.Header().Set("Content-Type", "video/mp2t")
		_, _ = w.Write([]byte{0x47, 0x40, 0x00})
	})
	mux.HandleFunc("/live/gone.ts", func(w http.ResponseWriter, _ *http.Request) {
		s.hits.Add(1)
		http.Error(w, "gone", http.StatusNotFound)
	})
	s.server = httptest.NewServer(mux)

	var err error
	s.fetcher, err = upstream.New(&upstream.Config{
		Origin:    s.server.URL,
		Timeout:   2 * time.Second,
		CacheSize: 8,
	}, log.NewTest(s.T()))
	s.Require().NoError(err)
}

func (s *FetcherSuite) TearDownTest() {
	s.server.Close()
}

func (s *FetcherSuite) TestFetchPlaylist() {
	resp, err := s.fetcher.Fetch(s.ctx, s.server.URL+"/live/index.m3u8")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Status)
	s.Equal("application/x-mpegURL", resp.ContentType)
	s.Equal(playlist, string(resp.Body))
}

func (s *FetcherSuite) TestDefaultContentType() {
	resp, err := s.fetcher.Fetch(s.ctx, s.server.URL+"/live/bare.m3u8")
	s.Require().NoError(err)
	s.Equal(hlsproxy.DefaultContentType, resp.ContentType)
}

func (s *FetcherSuite) TestPlaylistsAreNotCached() {
	for range 3 {
		_, err := s.fetcher.Fetch(s.ctx, s.server.URL+"/live/index.m3u8")
		s.Require().NoError(err)
	}
	s.Equal(int32(3), s.hits.Load())
}

func (s *FetcherSuite) TestSegmentsAreCached() {
	for range 3 {
		resp, err := s.fetcher.Fetch(s.ctx, s.server.URL+"/live/seg1.ts")
		s.Require().NoError(err)
		s.Equal("video/mp2t", resp.ContentType)
		s.Equal([]byte{0x47, 0x40, 0x00}, resp.Body)
	}
	s.Equal(int32(1), s.hits.Load())
}

func (s *FetcherSuite) TestCacheDisabled() {
	fetcher, err := upstream.New(&upstream.Config{Timeout: time.Second}, log.NewTest(s.T()))
	s.Require().NoError(err)

	for range 2 {
		_, err := fetcher.Fetch(s.ctx, s.server.URL+"/live/seg1.ts")
		s.Require().NoError(err)
	}
	s.Equal(int32(2), s.hits.Load())
}

func (s *FetcherSuite) TestUpstreamStatus() {
	resp, err := s.fetcher.Fetch(s.ctx, s.server.URL+"/live/gone.ts")
	s.Require().Error(err)
	s.True(errors.Is(err, hlsproxy.ErrUpstreamStatus))
	s.Require().NotNil(resp)
	s.Equal(http.StatusNotFound, resp.Status)

	// failures are not cached
	_, err = s.fetcher.Fetch(s.ctx, s.server.URL+"/live/gone.ts")
	s.Error(err)
	s.Equal(int32(2), s.hits.Load())
}

func (s *FetcherSuite) TestUpstreamNetwork() {
	url := s.server.URL + "/live/index.m3u8"
	s.server.Close()

	resp, err := s.fetcher.Fetch(s.ctx, url)
	s.Require().Error(err)
	s.True(errors.Is(err, hlsproxy.ErrUpstreamNetwork))
	s.Nil(resp)
}

func (s *FetcherSuite) TestConcurrentFetchesShareRequest() {
	const callers = 5
	url := s.server.URL + "/live/slow.m3u8"

	var wg sync.WaitGroup
	bodies := make([]string, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := s.fetcher.Fetch(s.ctx, url)
			errs[i] = err
			if resp != nil {
				bodies[i] = string(resp.Body)
			}
		}()
	}

	s.Eventually(func() bool { return s.hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	// let the other callers join the request in flight
	time.Sleep(100 * time.Millisecond)
	close(s.release)
	wg.Wait()

	s.Equal(int32(1), s.hits.Load())
	for i := range callers {
		s.NoError(errs[i])
		s.Equal(playlist, bodies[i])
	}
}
