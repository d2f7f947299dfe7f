// Package roomcode turns what a viewer pastes (a share link or a bare code)
// into a room code.
package roomcode

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/imtaco/live-viewer/internal/validation"
)

var meetingPath = regexp.MustCompile(`/streaming/meeting/([^/?#]+)`)

// Extract returns the room code in input, or "" when none can be derived.
//
//	https://host/streaming/meeting/abc-def  -> abc-def
//	abc-def                                 -> abc-def
//	" abc-def "                             -> abc-def
//	https://host/other/path                 -> ""
func Extract(input string) string {
	u, ok := parseAbsolute(input)
	if !ok {
		trimmed := strings.TrimSpace(input)
		if validation.IsRoomCode(trimmed) {
			return trimmed
		}
		return ""
	}

	if m := meetingPath.FindStringSubmatch(u.EscapedPath()); m != nil {
		return m[1]
	}
	if validation.IsRoomCode(input) {
		return input
	}
	return ""
}

// parseAbsolute accepts only inputs with a scheme, the way a browser URL
// constructor does; url.Parse alone takes any bare word as a relative path.
func parseAbsolute(input string) (*url.URL, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	return u, true
}
