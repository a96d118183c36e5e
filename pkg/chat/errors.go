package chat

import "github.com/Knoblauchpilze/backend-toolkit/pkg/errors"

const (
	ErrNotConnected     errors.ErrorCode = 100
	ErrConnectionFailed errors.ErrorCode = 101
	ErrSendFailed       errors.ErrorCode = 102
)
