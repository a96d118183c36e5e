package service

import "github.com/Knoblauchpilze/backend-toolkit/pkg/errors"

const (
	ErrNotLoggedIn           errors.ErrorCode = 400
	ErrSuperChatAmountTooLow errors.ErrorCode = 401
)
