package upstream

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/live-viewer/internal/otel"
)

var (
	upstreamFetches metric.Int64Counter
	upstreamErrors  metric.Int64Counter

	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("hls_proxy.upstream", intotel.PrefixHLSProxy)

	f.Int64Counter(&upstreamFetches, "upstream.fetches",
		metric.WithDescription("Requests sent to the media origin"))

	f.Int64Counter(&upstreamErrors, "upstream.errors",
		metric.WithDescription("Failed upstream fetches by kind"))

	f.Int64Counter(&cacheHits, "segments.cache_hits",
		metric.WithDescription("Segment cache hits"))

	f.Int64Counter(&cacheMisses, "segments.cache_misses",
		metric.WithDescription("Segment cache misses"))
}
