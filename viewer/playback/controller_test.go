package playback_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	"github.com/imtaco/live-viewer/viewer"
	"github.com/imtaco/live-viewer/viewer/mocks"
	"github.com/imtaco/live-viewer/viewer/playback"
)

var errPlayer = errors.PureNew("player exploded")

var testLayers = []viewer.Layer{
	{URL: "https://cdn.example.com/720.m3u8", Resolution: "1280x720", Width: 1280, Height: 720, Bitrate: 2800000},
	{URL: "https://cdn.example.com/360.m3u8", Width: 640, Height: 360, Bitrate: 800000},
}

type fakePlayer struct {
	*mocks.MockPlayer
	handlers map[viewer.EventKind]func(viewer.PlayerEvent)
	created  *gomock.Call
}

func (p *fakePlayer) fire(ev viewer.PlayerEvent) {
	p.handlers[ev.Kind()](ev)
}

type ControllerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	factory    *mocks.MockPlayerFactory
	sink       *bytes.Buffer
	controller *playback.Controller
	nextID     viewer.ListenerID
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.factory = mocks.NewMockPlayerFactory(s.ctrl)
	s.sink = &bytes.Buffer{}
	s.controller = playback.NewController(s.factory, s.sink, log.NewTest(s.T()))
}

func (s *ControllerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newPlayer prepares the factory to return a player for url that records
// its six listeners and receives the given volume on attach.
func (s *ControllerSuite) newPlayer(url string, volume int) *fakePlayer {
	p := &fakePlayer{
		MockPlayer: mocks.NewMockPlayer(s.ctrl),
		handlers:   map[viewer.EventKind]func(viewer.PlayerEvent){},
	}
	p.created = s.factory.EXPECT().NewPlayer(url, s.sink).Return(p.MockPlayer, nil)
	p.EXPECT().On(gomock.Any(), gomock.Any()).
		DoAndReturn(func(kind viewer.EventKind, h func(viewer.PlayerEvent)) viewer.ListenerID {
			s.nextID++
			p.handlers[kind] = h
			return s.nextID
		}).Times(len(viewer.PlayerEventKinds))
	p.EXPECT().SetVolume(volume).Return(nil)
	return p
}

// expectTeardown expects listeners off, then pause, then destroy.
func (s *ControllerSuite) expectTeardown(p *fakePlayer) *gomock.Call {
	off := p.EXPECT().Off(gomock.Any(), gomock.Any()).Times(len(viewer.PlayerEventKinds))
	pause := p.EXPECT().Pause().Return(errPlayer).After(off)
	return p.EXPECT().Destroy().Return(nil).After(pause)
}

func (s *ControllerSuite) attach(url string) *fakePlayer {
	p := s.newPlayer(url, playback.DefaultVolume)
	s.Require().NoError(s.controller.SetURL(url))
	return p
}

func (s *ControllerSuite) state() playback.State {
	return s.controller.State().Get()
}

func (s *ControllerSuite) TestInitialState() {
	st := s.state()
	s.False(st.Attached)
	s.Equal(playback.DefaultVolume, st.Volume)
	s.True(st.Paused)
	s.True(st.IsLive)
	s.Empty(st.Layers)
	s.Nil(st.CurrentLayer)
}

func (s *ControllerSuite) TestAttachSubscribesAllEvents() {
	p := s.attach("https://cdn.example.com/live.m3u8")

	st := s.state()
	s.True(st.Attached)
	s.Equal("https://cdn.example.com/live.m3u8", st.URL)
	for _, kind := range viewer.PlayerEventKinds {
		s.Contains(p.handlers, kind)
	}
}

func (s *ControllerSuite) TestSameURLIsNoop() {
	s.attach("https://cdn.example.com/live.m3u8")
	s.NoError(s.controller.SetURL("https://cdn.example.com/live.m3u8"))
}

func (s *ControllerSuite) TestEvents() {
	p := s.attach("https://cdn.example.com/live.m3u8")

	p.fire(viewer.PlaybackStateEvent{Paused: false})
	s.False(s.state().Paused)

	p.fire(viewer.AutoplayBlockedEvent{})
	s.True(s.state().AutoplayBlocked)

	p.fire(viewer.LiveEdgeEvent{IsLive: false})
	s.False(s.state().IsLive)
	p.fire(viewer.LiveEdgeEvent{IsLive: true})
	s.True(s.state().IsLive)

	p.fire(viewer.ManifestLoadedEvent{Layers: testLayers})
	s.Equal(testLayers, s.state().Layers)

	p.fire(viewer.LayerUpdatedEvent{Layer: &viewer.Layer{URL: testLayers[1].URL}})
	s.Require().NotNil(s.state().CurrentLayer)
	s.Equal(testLayers[1], *s.state().CurrentLayer)

	p.fire(viewer.LayerUpdatedEvent{})
	s.Nil(s.state().CurrentLayer)

	p.fire(viewer.ManifestLoadedEvent{})
	s.NotNil(s.state().Layers)
	s.Empty(s.state().Layers)
}

func (s *ControllerSuite) TestUnlistedLayerIsNotCurrent() {
	p := s.attach("https://cdn.example.com/live.m3u8")
	p.fire(viewer.ManifestLoadedEvent{Layers: testLayers})

	p.fire(viewer.LayerUpdatedEvent{Layer: &viewer.Layer{URL: "https://cdn.example.com/1080.m3u8"}})
	s.Nil(s.state().CurrentLayer)
}

// a player may emit events from inside On, before SetURL has finished
// attaching it
func (s *ControllerSuite) TestEventsDuringSubscribe() {
	url := "https://cdn.example.com/live.m3u8"
	p := &fakePlayer{
		MockPlayer: mocks.NewMockPlayer(s.ctrl),
		handlers:   map[viewer.EventKind]func(viewer.PlayerEvent){},
	}
	s.factory.EXPECT().NewPlayer(url, s.sink).Return(p.MockPlayer, nil)
	p.EXPECT().On(gomock.Any(), gomock.Any()).
		DoAndReturn(func(kind viewer.EventKind, h func(viewer.PlayerEvent)) viewer.ListenerID {
			s.nextID++
			p.handlers[kind] = h
			switch kind {
			case viewer.EventManifestLoaded:
				h(viewer.ManifestLoadedEvent{Layers: testLayers})
			case viewer.EventAutoplayBlocked:
				h(viewer.AutoplayBlockedEvent{})
			}
			return s.nextID
		}).Times(len(viewer.PlayerEventKinds))
	p.EXPECT().SetVolume(playback.DefaultVolume).Return(nil)

	s.Require().NoError(s.controller.SetURL(url))

	st := s.state()
	s.True(st.Attached)
	s.Len(st.Layers, 2)
	s.True(st.AutoplayBlocked)

	p.EXPECT().SetLayer(testLayers[1]).Return(nil)
	s.controller.SelectLayer(testLayers[1].URL)
}

func (s *ControllerSuite) TestErrorEventMessage() {
	p := s.attach("https://cdn.example.com/live.m3u8")

	p.fire(viewer.ErrorEvent{Description: "manifest 404", Message: "ignored"})
	s.Equal("manifest 404", s.state().ErrorMessage)

	p.fire(viewer.ErrorEvent{Message: "network"})
	s.Equal("network", s.state().ErrorMessage)

	p.fire(viewer.ErrorEvent{Fatal: true})
	s.Equal("playback error", s.state().ErrorMessage)
}

func (s *ControllerSuite) TestURLChangeReplacesPlayer() {
	urls := []string{
		"https://cdn.example.com/a.m3u8",
		"https://cdn.example.com/b.m3u8",
		"https://cdn.example.com/c.m3u8",
	}

	var prev *fakePlayer
	for _, url := range urls {
		next := s.newPlayer(url, playback.DefaultVolume)
		if prev != nil {
			next.created.After(s.expectTeardown(prev))
		}
		s.Require().NoError(s.controller.SetURL(url))
		s.True(s.state().Attached)
		s.Equal(url, s.state().URL)
		prev = next
	}
}

func (s *ControllerSuite) TestStaleEventsIgnored() {
	old := s.attach("https://cdn.example.com/a.m3u8")
	s.expectTeardown(old)
	s.newPlayer("https://cdn.example.com/b.m3u8", playback.DefaultVolume)
	s.Require().NoError(s.controller.SetURL("https://cdn.example.com/b.m3u8"))

	old.fire(viewer.ErrorEvent{Description: "from the old stream"})
	old.fire(viewer.AutoplayBlockedEvent{})

	st := s.state()
	s.Empty(st.ErrorMessage)
	s.False(st.AutoplayBlocked)
}

func (s *ControllerSuite) TestURLChangeResetsStreamState() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	p.fire(viewer.ManifestLoadedEvent{Layers: testLayers})
	p.fire(viewer.ErrorEvent{Message: "stalled"})

	s.expectTeardown(p)
	s.newPlayer("https://cdn.example.com/b.m3u8", playback.DefaultVolume)
	s.Require().NoError(s.controller.SetURL("https://cdn.example.com/b.m3u8"))

	st := s.state()
	s.Empty(st.Layers)
	s.Empty(st.ErrorMessage)
}

func (s *ControllerSuite) TestEmptyURLDetaches() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	s.expectTeardown(p)

	s.NoError(s.controller.SetURL(""))
	s.False(s.state().Attached)
	s.Empty(s.state().URL)
}

func (s *ControllerSuite) TestVolumeClampedAndPersisted() {
	p := s.attach("https://cdn.example.com/a.m3u8")

	p.EXPECT().SetVolume(100).Return(nil)
	s.controller.SetVolume(150)
	s.Equal(100, s.state().Volume)

	p.EXPECT().SetVolume(0).Return(errPlayer)
	s.controller.SetVolume(-10)
	s.Equal(0, s.state().Volume)

	p.EXPECT().SetVolume(42).Return(nil)
	s.controller.SetVolume(42)

	s.expectTeardown(p)
	s.newPlayer("https://cdn.example.com/b.m3u8", 42)
	s.Require().NoError(s.controller.SetURL("https://cdn.example.com/b.m3u8"))
	s.Equal(42, s.state().Volume)
}

func (s *ControllerSuite) TestVolumeWithoutPlayer() {
	s.controller.SetVolume(30)
	s.Equal(30, s.state().Volume)

	s.newPlayer("https://cdn.example.com/a.m3u8", 30)
	s.Require().NoError(s.controller.SetURL("https://cdn.example.com/a.m3u8"))
}

func (s *ControllerSuite) TestSelectLayer() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	p.fire(viewer.ManifestLoadedEvent{Layers: testLayers})

	p.EXPECT().SetLayer(testLayers[0]).Return(nil)
	s.controller.SelectLayer(testLayers[0].URL)

	p.EXPECT().SetLayer(testLayers[1]).Return(errPlayer)
	s.controller.SelectLayer(testLayers[1].URL)
}

func (s *ControllerSuite) TestSelectUnknownLayer() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	p.fire(viewer.ManifestLoadedEvent{Layers: testLayers})
	p.fire(viewer.LayerUpdatedEvent{Layer: &testLayers[0]})

	// no SetLayer expectation: any call fails the test
	s.controller.SelectLayer("https://cdn.example.com/1080.m3u8")
	s.controller.SelectLayer("")

	s.Require().NotNil(s.state().CurrentLayer)
	s.Equal(testLayers[0].URL, s.state().CurrentLayer.URL)
}

func (s *ControllerSuite) TestPlay() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	p.fire(viewer.AutoplayBlockedEvent{})

	p.EXPECT().Play(gomock.Any()).Return(nil)
	s.NoError(s.controller.Play(context.Background()))
	s.False(s.state().AutoplayBlocked)
}

func (s *ControllerSuite) TestPlayFailureSurfaces() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	p.fire(viewer.AutoplayBlockedEvent{})

	p.EXPECT().Play(gomock.Any()).Return(errors.PureNew("play() requires a user gesture"))
	err := s.controller.Play(context.Background())
	s.Error(err)
	s.True(errors.Is(err, viewer.ErrPlayback))
	s.Equal("play() requires a user gesture", s.state().ErrorMessage)
	s.True(s.state().AutoplayBlocked)
}

func (s *ControllerSuite) TestPlayWithoutPlayer() {
	err := s.controller.Play(context.Background())
	s.True(errors.Is(err, viewer.ErrPlayback))
	s.Equal("no stream loaded", s.state().ErrorMessage)
}

func (s *ControllerSuite) TestCosmeticFailuresSwallowed() {
	p := s.attach("https://cdn.example.com/a.m3u8")

	p.EXPECT().Pause().Return(errPlayer)
	s.controller.Pause()

	p.EXPECT().SeekToLivePosition(gomock.Any()).Return(errPlayer)
	s.controller.SeekToLive(context.Background())

	s.Empty(s.state().ErrorMessage)
}

func (s *ControllerSuite) TestControlsWithoutPlayerAreNoops() {
	s.controller.Pause()
	s.controller.SeekToLive(context.Background())
	s.controller.SelectLayer(testLayers[0].URL)
}

func (s *ControllerSuite) TestFactoryFailure() {
	s.factory.EXPECT().NewPlayer("https://cdn.example.com/a.m3u8", s.sink).Return(nil, errPlayer)

	err := s.controller.SetURL("https://cdn.example.com/a.m3u8")
	s.True(errors.Is(err, viewer.ErrPlayback))
	s.False(s.state().Attached)
	s.Equal("player exploded", s.state().ErrorMessage)

	// the same URL is retried since nothing is attached
	s.newPlayer("https://cdn.example.com/a.m3u8", playback.DefaultVolume)
	s.NoError(s.controller.SetURL("https://cdn.example.com/a.m3u8"))
	s.True(s.state().Attached)
}

func (s *ControllerSuite) TestClose() {
	p := s.attach("https://cdn.example.com/a.m3u8")
	s.expectTeardown(p)

	s.controller.Close()
	s.controller.Close()
	s.False(s.state().Attached)

	err := s.controller.SetURL("https://cdn.example.com/b.m3u8")
	s.True(errors.Is(err, viewer.ErrDisposed))

	// late events from the closed player are dropped
	p.fire(viewer.ErrorEvent{Message: "late"})
	s.Empty(s.state().ErrorMessage)
}
