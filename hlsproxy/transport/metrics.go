package transport

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/live-viewer/internal/otel"
)

var (
	proxyRequests metric.Int64Counter
	proxyFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("hls_proxy.transport", intotel.PrefixHLSProxy)

	f.Int64Counter(&proxyRequests, "requests",
		metric.WithDescription("Proxied manifest and segment requests"))

	f.Int64Counter(&proxyFailures, "failures",
		metric.WithDescription("Proxied requests answered with an error body"))
}
