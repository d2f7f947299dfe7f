package constants

import "strings"

type UserRole string

const (
	// can stop/close a room, start live streaming
	UserRoleHost UserRole = "host"
	// can join to send/receive live streams
	UserRoleAnchor UserRole = "anchor"
	// can join as viewer to only receive live streams
	UserRoleGuest UserRole = "guest"
)

// ParseUserRole maps a role name to a known role, ok is false otherwise.
func ParseUserRole(s string) (UserRole, bool) {
	switch r := UserRole(strings.ToLower(strings.TrimSpace(s))); r {
	case UserRoleHost, UserRoleAnchor, UserRoleGuest:
		return r, true
	}
	return "", false
}

const (
	// ViewerDisplayName is the display name used for listen-only joins.
	ViewerDisplayName = "HLS Viewer"

	// DefaultUpstreamOrigin is the media origin used for legacy proxy paths
	// and direct stream URLs.
	DefaultUpstreamOrigin = "https://liveshopping.app.100ms.live"
)
