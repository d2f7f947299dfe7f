package transport

import (
	"context"

	"github.com/imtaco/live-viewer/internal/observable"
	"github.com/imtaco/live-viewer/viewer/view"
)

//go:generate mockgen -destination=../mocks/mock_transport.go -package=mocks github.com/imtaco/live-viewer/viewer/transport Viewer

// Viewer is what the HTTP surface drives; *view.View implements it.
type Viewer interface {
	Snapshot() observable.Observable[view.Snapshot]
	Load(ctx context.Context, input string) error
	Leave(ctx context.Context)
	Play(ctx context.Context) error
	Pause()
	SeekToLive(ctx context.Context)
	SetVolume(volume int)
	SelectLayer(url string)
}

var _ Viewer = (*view.View)(nil)
