package messages

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Log is the ordered sequence of messages displayed to the user. It is
// append only: messages are never reordered, replaced or evicted for
// the lifetime of a chat session.
type Log interface {
	Append(msg ChatMessage)
	All() []ChatMessage
	Len() int
}

type logImpl struct {
	lock     sync.RWMutex
	messages []ChatMessage
}

func NewLog() Log {
	return &logImpl{
		messages: make([]ChatMessage, 0),
	}
}

func (l *logImpl) Append(msg ChatMessage) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if msg.Id == "" {
		msg.Id = surrogateKey()
	}

	l.messages = append(l.messages, msg)
}

func (l *logImpl) All() []ChatMessage {
	l.lock.RLock()
	defer l.lock.RUnlock()

	out := make([]ChatMessage, len(l.messages))
	copy(out, l.messages)

	return out
}

func (l *logImpl) Len() int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return len(l.messages)
}

// surrogateKey builds a display key for messages the server did not
// assign an id to. It only serves rendering purposes and provides no
// duplicate suppression.
func surrogateKey() string {
	return fmt.Sprintf("local-%s", uuid.NewString())
}
