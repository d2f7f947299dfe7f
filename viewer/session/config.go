package session

import (
	"github.com/spf13/viper"

	"github.com/imtaco/live-viewer/internal/constants"
)

// FallbackPolicy decides what Load does when joining the room fails.
type FallbackPolicy string

const (
	// FallbackStrict fails the load with a connection error.
	FallbackStrict FallbackPolicy = "strict"
	// FallbackDirectURL plays the origin's direct stream URL without a room.
	FallbackDirectURL FallbackPolicy = "direct_url"
)

type Config struct {
	UserName       string         `mapstructure:"user_name"`
	Fallback       FallbackPolicy `mapstructure:"fallback"`
	UpstreamOrigin string         `mapstructure:"upstream_origin"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("user_name"), constants.ViewerDisplayName)
	v.SetDefault(p("fallback"), string(FallbackStrict))
	v.SetDefault(p("upstream_origin"), constants.DefaultUpstreamOrigin)
}

// DirectStreamURL is the origin's stream URL for code, used by the
// direct_url fallback.
func (c *Config) DirectStreamURL(code string) string {
	return c.UpstreamOrigin + "/streaming/meeting/" + code + ".m3u8"
}
