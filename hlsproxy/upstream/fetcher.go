// Package upstream fetches manifests and segments from the media origin.
package upstream

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/imtaco/live-viewer/hlsproxy"
	"github.com/imtaco/live-viewer/internal/constants"
	"github.com/imtaco/live-viewer/internal/errors"
	"github.com/imtaco/live-viewer/internal/log"
	intotel "github.com/imtaco/live-viewer/internal/otel"
)

type Config struct {
	// Origin is prepended to legacy path-style requests.
	Origin  string        `mapstructure:"origin"`
	Timeout time.Duration `mapstructure:"timeout"`
	// CacheSize bounds the segment cache; 0 disables it. Playlists are
	// never cached since a live playlist changes every target duration.
	CacheSize int `mapstructure:"cache_size"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("origin"), constants.DefaultUpstreamOrigin)
	v.SetDefault(p("timeout"), "10s")
	v.SetDefault(p("cache_size"), 256)
}

type Fetcher struct {
	client   *resty.Client
	segments *lru.Cache[string, *hlsproxy.Response]
	sf       singleflight.Group
	tracer   trace.Tracer
	logger   *log.Logger
}

var _ hlsproxy.Fetcher = (*Fetcher)(nil)

func New(cfg *Config, logger *log.Logger) (*Fetcher, error) {
	f := &Fetcher{
		client: resty.New().
			SetTimeout(cfg.Timeout),
		tracer: otel.Tracer("hls_proxy.upstream"),
		logger: logger,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, *hlsproxy.Response](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create segment cache: %w", err)
		}
		f.segments = cache
	}
	return f, nil
}

// Fetch GETs target. Concurrent fetches of the same URL share one upstream
// request.
func (f *Fetcher) Fetch(ctx context.Context, target string) (*hlsproxy.Response, error) {
	segment := isSegment(target)
	if segment && f.segments != nil {
		if resp, ok := f.segments.Get(target); ok {
			cacheHits.Add(ctx, 1)
			return resp, nil
		}
		cacheMisses.Add(ctx, 1)
	}

	// the shared request must outlive any single caller giving up
	sctx := context.WithoutCancel(ctx)
	v, err, shared := f.sf.Do(target, func() (any, error) {
		return f.get(sctx, target)
	})
	if shared {
		f.logger.Debug("Shared upstream fetch", log.String("url", target))
	}

	resp, _ := v.(*hlsproxy.Response)
	if err != nil {
		return resp, err
	}
	if segment && f.segments != nil {
		f.segments.Add(target, resp)
	}
	return resp, nil
}

func (f *Fetcher) get(ctx context.Context, target string) (*hlsproxy.Response, error) {
	ctx, span := intotel.StartSpan(ctx, f.tracer, "upstream.Fetch",
		attribute.String("http.url", target))
	defer span.End()

	upstreamFetches.Add(ctx, 1)
	r, err := f.client.R().SetContext(ctx).Get(target)
	if err != nil {
		intotel.RecordError(span, err)
		upstreamErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "network")))
		return nil, errors.Wrapf(hlsproxy.ErrUpstreamNetwork, err, "fetch %s", target)
	}

	span.SetAttributes(attribute.Int("http.status_code", r.StatusCode()))
	contentType := r.Header().Get("Content-Type")
	if contentType == "" {
		contentType = hlsproxy.DefaultContentType
	}
	resp := &hlsproxy.Response{
		Status:      r.StatusCode(),
		ContentType: contentType,
		Body:        r.Body(),
	}

	if !r.IsSuccess() {
		err := errors.Newf(hlsproxy.ErrUpstreamStatus, "upstream returned %d", r.StatusCode())
		intotel.RecordError(span, err)
		upstreamErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", "status")))
		return resp, err
	}
	return resp, nil
}

func isSegment(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	return ext != "" && ext != ".m3u8"
}
