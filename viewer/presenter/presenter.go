// Package presenter picks which peer the realtime view should show and
// formats quality layers for display.
package presenter

import (
	"fmt"
	"math"
	"strconv"

	"github.com/imtaco/live-viewer/internal/constants"
	"github.com/imtaco/live-viewer/viewer"
)

// SelectTarget returns the first remote peer publishing video, falling back
// to a remote host. It returns nil when nobody qualifies.
func SelectTarget(peers []viewer.Peer) *viewer.Peer {
	var host *viewer.Peer
	for i := range peers {
		p := &peers[i]
		if p.IsLocal {
			continue
		}
		if p.VideoTrack != "" {
			return clone(p)
		}
		if host == nil {
			if role, ok := constants.ParseUserRole(p.RoleName); ok && role == constants.UserRoleHost {
				host = p
			}
		}
	}
	if host == nil {
		return nil
	}
	return clone(host)
}

// LayerLabel renders a layer as "<resolution> · <kbps> kbps". A missing
// resolution is shown as WxH with "?" for unknown sides.
func LayerLabel(l viewer.Layer) string {
	res := l.Resolution
	if res == "" {
		res = side(l.Width) + "x" + side(l.Height)
	}
	kbps := int(math.Round(float64(l.Bitrate) / 1000))
	return fmt.Sprintf("%s · %d kbps", res, kbps)
}

func side(n int) string {
	if n <= 0 {
		return "?"
	}
	return strconv.Itoa(n)
}

func clone(p *viewer.Peer) *viewer.Peer {
	cp := *p
	return &cp
}
