package messages

import (
	"strings"
	"unicode/utf8"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
)

// MaxMessageLength is enforced client side before a frame is handed to
// the connection manager. The server remains the authority on the
// actual limit.
const MaxMessageLength = 200

func ValidateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return errors.NewCode(ErrEmptyMessage)
	}

	if utf8.RuneCountInString(body) > MaxMessageLength {
		return errors.NewCode(ErrMessageTooLong)
	}

	return nil
}
