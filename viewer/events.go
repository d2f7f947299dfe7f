package viewer

// PlayerEvent is the payload of a player event. The concrete type is fixed
// by Kind(): switch on the type to read the payload.
type PlayerEvent interface {
	Kind() EventKind
}

// ErrorEvent reports a player failure. Fatal errors stop playback.
type ErrorEvent struct {
	Description string
	Message     string
	Fatal       bool
}

func (ErrorEvent) Kind() EventKind { return EventError }

// PlaybackStateEvent reports play/pause transitions.
type PlaybackStateEvent struct {
	Paused bool
}

func (PlaybackStateEvent) Kind() EventKind { return EventPlaybackState }

// AutoplayBlockedEvent reports that playback needs a user gesture.
type AutoplayBlockedEvent struct{}

func (AutoplayBlockedEvent) Kind() EventKind { return EventAutoplayBlocked }

// LiveEdgeEvent reports whether the playhead is at the live edge. The
// player emits it with IsLive false once it falls behind.
type LiveEdgeEvent struct {
	IsLive bool
}

func (LiveEdgeEvent) Kind() EventKind { return EventLiveEdge }

// ManifestLoadedEvent carries the layers of a freshly loaded manifest.
type ManifestLoadedEvent struct {
	Layers []Layer
}

func (ManifestLoadedEvent) Kind() EventKind { return EventManifestLoaded }

// LayerUpdatedEvent reports the layer now playing; nil means automatic.
type LayerUpdatedEvent struct {
	Layer *Layer
}

func (LayerUpdatedEvent) Kind() EventKind { return EventLayerUpdated }
