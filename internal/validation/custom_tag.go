package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var roomCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func init() {
	MustRegisterGin("roomcode", ValidateRoomCode)
	MustRegisterGinAlias("streamurl", "url,startswith=http")
}

// IsRoomCode reports whether s is a bare room code: letters, digits, '-' and '_' only.
func IsRoomCode(s string) bool {
	return roomCodeRegex.MatchString(s)
}

// ValidateRoomCode is the "roomcode" validator tag.
func ValidateRoomCode(fl validator.FieldLevel) bool {
	return IsRoomCode(fl.Field().String())
}
