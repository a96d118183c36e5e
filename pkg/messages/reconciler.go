package messages

import "github.com/Knoblauchpilze/backend-toolkit/pkg/logger"

// Reconciler normalizes the frames received from the chat service into
// individual appends on the message log. A malformed frame is dropped
// and logged: it must never crash the session or corrupt the log.
type Reconciler interface {
	OnFrame(data []byte)
}

type OnAppend func(msg ChatMessage)

type reconcilerImpl struct {
	messages Log
	onAppend OnAppend
	log      logger.Logger
}

func NewReconciler(messages Log, onAppend OnAppend, log logger.Logger) Reconciler {
	return &reconcilerImpl{
		messages: messages,
		onAppend: onAppend,
		log:      log,
	}
}

func (r *reconcilerImpl) OnFrame(data []byte) {
	msgs, err := Decode(data)
	if err != nil {
		r.log.Warnf("Dropping malformed frame: %v", err)
		return
	}

	// History batches go through the same append path as individual
	// events, one message at a time and in batch order.
	for _, msg := range msgs {
		r.messages.Append(msg)

		if r.onAppend != nil {
			r.onAppend(msg)
		}
	}
}
