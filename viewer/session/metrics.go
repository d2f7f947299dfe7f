package session

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/live-viewer/internal/otel"
)

const meterName = "viewer.session"

var (
	loads        metric.Int64Counter
	loadFailures metric.Int64Counter
)

func init() {
	f := intotel.NewFactory(meterName, intotel.PrefixViewer)
	f.Int64Counter(&loads, "session.loads",
		metric.WithDescription("Total load attempts that resolved a room code"))
	f.Int64Counter(&loadFailures, "session.load_failures",
		metric.WithDescription("Total failed loads by error kind"))
}
