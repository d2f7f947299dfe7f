package otel

// Metric prefixes for each service
const (
	PrefixViewer   = "viewer"
	PrefixHLSProxy = "hls_proxy"
)
