package transport

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/live-viewer/internal/otel"
)

var (
	loadRequests    metric.Int64Counter
	eventStreams    metric.Int64UpDownCounter
	snapshotsSent   metric.Int64Counter
	controlFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("viewer.transport", intotel.PrefixViewer)

	f.Int64Counter(&loadRequests, "api.load_requests",
		metric.WithDescription("Load requests received"))

	f.Int64UpDownCounter(&eventStreams, "api.event_streams",
		metric.WithDescription("Open view state websocket streams"))

	f.Int64Counter(&snapshotsSent, "api.snapshots_sent",
		metric.WithDescription("View snapshots pushed to websocket clients"))

	f.Int64Counter(&controlFailures, "api.control_failures",
		metric.WithDescription("Player control requests that failed"))
}
