package messages

import "github.com/Knoblauchpilze/backend-toolkit/pkg/errors"

const (
	ErrUnrecognizedFrameFormat errors.ErrorCode = 300
	ErrUnsupportedBatchPayload errors.ErrorCode = 301
	ErrMessageEncodingFailed   errors.ErrorCode = 302
	ErrEmptyMessage            errors.ErrorCode = 303
	ErrMessageTooLong          errors.ErrorCode = 304
)
