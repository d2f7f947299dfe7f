package jwt

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/imtaco/live-viewer/internal/errors"
)

// NewAuth creates a new JWT authenticator with HS256 algorithm (default)
func NewAuth(secret string) Auth {
	return NewAuthWithAlgorithm(secret, jwt.SigningMethodHS256)
}

// NewAuthWithAlgorithm creates a new JWT authenticator with specified algorithm
// Supported algorithms: HS256, HS384, HS512
func NewAuthWithAlgorithm(secret string, method jwt.SigningMethod) Auth {
	return &jwtAuthImpl{
		secret:        []byte(secret),
		signingMethod: method,
	}
}

type jwtAuthImpl struct {
	secret        []byte
	signingMethod jwt.SigningMethod
}

func (j *jwtAuthImpl) Sign(claims RoomClaims) (string, error) {
	if err := claims.validate(); err != nil {
		return "", errors.New(ErrInvalidRequest, "user_id and room_id are required")
	}
	token := jwt.NewWithClaims(j.signingMethod, &claims)
	return token.SignedString(j.secret)
}

// Verify checks signature, algorithm and expiry.
func (j *jwtAuthImpl) Verify(tokenString string) (*RoomClaims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	claims := &RoomClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{j.signingMethod.Alg()}))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err, "parse token")
	}
	if err := claims.validate(); err != nil {
		return nil, errors.New(ErrInvalidToken, "missing required fields in token")
	}
	return claims, nil
}

// Decode reads the claims without checking the signature. The viewer only
// needs routing hints (room, janus room) out of a token the media server
// verifies itself.
func Decode(tokenString string) (*RoomClaims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}
	claims := &RoomClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err, "decode token")
	}
	if err := claims.validate(); err != nil {
		return nil, errors.New(ErrInvalidToken, "missing required fields in token")
	}
	return claims, nil
}
