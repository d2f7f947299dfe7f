package jwt

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/imtaco/live-viewer/internal/errors"
)

const (
	ErrInvalidRequest errors.Code = "invalid request"
	ErrInvalidToken   errors.Code = "invalid token"
	ErrNoToken        errors.Code = "no token"
)

// Auth signs and verifies room tokens.
type Auth interface {
	Sign(claims RoomClaims) (string, error)
	Verify(tokenString string) (*RoomClaims, error)
}

// RoomClaims is the payload of a room auth token handed out by the token
// service and presented to the media server on join.
type RoomClaims struct {
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	Role      string `json:"role,omitempty"`
	JanusRoom int64  `json:"janus_room,omitempty"`
	jwt.RegisteredClaims
}

func (c *RoomClaims) validate() error {
	if c.UserID == "" || c.RoomID == "" {
		return ErrInvalidToken
	}
	return nil
}
