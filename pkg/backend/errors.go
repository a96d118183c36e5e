package backend

import "github.com/Knoblauchpilze/backend-toolkit/pkg/errors"

const (
	ErrRequestFailed        errors.ErrorCode = 500
	ErrUnexpectedStatusCode errors.ErrorCode = 501
	ErrUnauthorized         errors.ErrorCode = 502
	ErrResponseDecoding     errors.ErrorCode = 503
)
