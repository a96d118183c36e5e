package messages

import (
	"encoding/json"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
)

// Encode serializes an outbound frame, stamping it with the provided
// send time.
func Encode(msg Outbound, sentAt time.Time) ([]byte, error) {
	msg.CreatedAt = sentAt

	out, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WrapCode(err, ErrMessageEncodingFailed)
	}

	return out, nil
}
