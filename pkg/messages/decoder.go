package messages

import (
	"encoding/json"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
)

// The chat service delivers the history batch with its payload as a
// json encoded string, carried in the content or in the message field.
// Both are tried, content first.
type frameEnvelope struct {
	Kind    Kind   `json:"type"`
	Content string `json:"content"`
	Message string `json:"message"`
}

type historyBatch struct {
	Messages []ChatMessage `json:"messages"`
}

// Decode interprets a single inbound frame and returns the chat
// messages it carries: one for an individual event, possibly several
// for a history batch, preserving the order of the batch.
func Decode(data []byte) ([]ChatMessage, error) {
	var envelope frameEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.WrapCode(err, ErrUnrecognizedFrameFormat)
	}

	if envelope.Kind == RECENT_MESSAGES {
		return decodeHistoryBatch(envelope)
	}

	return decodeSingleMessage(data)
}

func decodeSingleMessage(data []byte) ([]ChatMessage, error) {
	var msg ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, errors.WrapCode(err, ErrUnrecognizedFrameFormat)
	}

	return []ChatMessage{msg}, nil
}

func decodeHistoryBatch(envelope frameEnvelope) ([]ChatMessage, error) {
	for _, payload := range []string{envelope.Content, envelope.Message} {
		if payload == "" {
			continue
		}

		var batch historyBatch
		if err := json.Unmarshal([]byte(payload), &batch); err != nil {
			continue
		}

		if batch.Messages != nil {
			return batch.Messages, nil
		}
	}

	return nil, errors.NewCode(ErrUnsupportedBatchPayload)
}
