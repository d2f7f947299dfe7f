package janus

import "github.com/imtaco/live-viewer/internal/errors"

const (
	ErrFailedRequest       errors.Code = "fail to make request"
	ErrInvalidPayload      errors.Code = "invalid payload"
	ErrInvalidResponse     errors.Code = "invalid response"
	ErrNoneSuccessResponse errors.Code = "none success response"
	ErrPluginError         errors.Code = "plugin error"
)
