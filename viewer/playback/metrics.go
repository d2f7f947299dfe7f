package playback

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/imtaco/live-viewer/internal/otel"
)

var (
	playerSwaps  metric.Int64Counter
	playerErrors metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("viewer.playback", intotel.PrefixViewer)

	f.Int64Counter(&playerSwaps, "player.attached",
		metric.WithDescription("Players attached to a new stream URL"))

	f.Int64Counter(&playerErrors, "player.errors",
		metric.WithDescription("Player construction failures and ERROR events"))
}
