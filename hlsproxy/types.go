// Package hlsproxy forwards HLS manifest and segment requests to the media
// origin and adds permissive CORS headers to the answer.
package hlsproxy

import (
	"context"

	"github.com/imtaco/live-viewer/internal/errors"
)

//go:generate mockgen -destination=mocks/mock_hlsproxy.go -package=mocks github.com/imtaco/live-viewer/hlsproxy Fetcher

const (
	// ErrUpstreamStatus is a non-2xx answer from the origin.
	ErrUpstreamStatus errors.Code = "upstream status"
	// ErrUpstreamNetwork means no answer arrived at all.
	ErrUpstreamNetwork errors.Code = "upstream network"
)

const DefaultContentType = "application/vnd.apple.mpegurl"

// Response is an upstream answer as it is relayed to the client.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Fetcher performs the upstream GET. On ErrUpstreamStatus the response is
// returned alongside the error so the caller can mirror its status.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}
