package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/bitsacm/pollz-client/pkg/chat"
	"github.com/bitsacm/pollz-client/pkg/communication"
	"github.com/bitsacm/pollz-client/pkg/session"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
)

const eventuallyTimeout = 2 * time.Second
const eventuallyTick = 2 * time.Millisecond

var sampleUser = session.User{
	Id:    "21f7d2a0",
	Email: "alice@campus.example.com",
}

type readResult struct {
	data []byte
	err  error
}

type mockTransport struct {
	lock   sync.Mutex
	reads  chan readResult
	writes [][]byte
}

func newMockTransport() *mockTransport {
	return &mockTransport{
		reads: make(chan readResult, 16),
	}
}

func (t *mockTransport) Read(ctx context.Context) ([]byte, error) {
	select {
	case res := <-t.reads:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *mockTransport) Write(ctx context.Context, data []byte) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.writes = append(t.writes, data)
	return nil
}

func (t *mockTransport) Close(code websocket.StatusCode, reason string) error {
	t.reads <- readResult{
		err: websocket.CloseError{
			Code:   code,
			Reason: reason,
		},
	}
	return nil
}

func (t *mockTransport) pushFrame(data []byte) {
	t.reads <- readResult{data: data}
}

func (t *mockTransport) writeCount() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return len(t.writes)
}

func (t *mockTransport) lastWrite() []byte {
	t.lock.Lock()
	defer t.lock.Unlock()

	if len(t.writes) == 0 {
		return nil
	}
	return t.writes[len(t.writes)-1]
}

type mockDialer struct {
	lock       sync.Mutex
	transports []*mockTransport
}

func (d *mockDialer) dial(ctx context.Context, url string) (chat.Transport, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	transport := newMockTransport()
	d.transports = append(d.transports, transport)
	return transport, nil
}

func (d *mockDialer) transportAt(index int) *mockTransport {
	d.lock.Lock()
	defer d.lock.Unlock()

	if index >= len(d.transports) {
		return nil
	}
	return d.transports[index]
}

func newTestLogger() logger.Logger {
	return logger.New(os.Stdout)
}

func newTestSession(dialer *mockDialer, events Events) ChatSession {
	config := chat.DefaultConfig()
	config.User = sampleUser
	config.ReconnectBaseDelay = 1 * time.Millisecond
	config.ReconnectMaxDelay = 5 * time.Millisecond

	return NewChatSession(ChatSessionProps{
		Config: config,
		Events: events,
		Log:    logger.New(os.Stdout),
		Dial:   dialer.dial,
	})
}

func startAndWait(t *testing.T, chatSession ChatSession) {
	chatSession.Start()
	assert.Eventually(
		t,
		func() bool { return chatSession.Status() == chat.CONNECTED },
		eventuallyTimeout,
		eventuallyTick,
	)
}

func historyBatchFrame(t *testing.T, bodies ...string) []byte {
	type batch struct {
		Messages []map[string]string `json:"messages"`
	}

	msgs := make([]map[string]string, 0, len(bodies))
	for _, body := range bodies {
		msgs = append(msgs, map[string]string{
			"type":    "text",
			"message": body,
		})
	}

	payload, err := json.Marshal(batch{Messages: msgs})
	assert.Nil(t, err, "Actual err: %v", err)

	wrapped, err := json.Marshal(string(payload))
	assert.Nil(t, err, "Actual err: %v", err)

	return []byte(fmt.Sprintf(`{"type": "recent_messages", "content": %s}`, wrapped))
}

type mockSuperChatBackend struct {
	lock sync.Mutex

	listCalled int
	highlights []communication.SuperChatHighlightDtoResponse
	listErr    error

	orderCalled   int
	lastOrder     communication.SuperChatOrderDtoRequest
	orderResponse communication.SuperChatOrderDtoResponse
	orderErr      error
}

func (m *mockSuperChatBackend) ListSuperChats(
	ctx context.Context,
) ([]communication.SuperChatHighlightDtoResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.listCalled++
	return m.highlights, m.listErr
}

func (m *mockSuperChatBackend) CreateSuperChatOrder(
	ctx context.Context, order communication.SuperChatOrderDtoRequest,
) (communication.SuperChatOrderDtoResponse, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.orderCalled++
	m.lastOrder = order
	return m.orderResponse, m.orderErr
}

func (m *mockSuperChatBackend) listCount() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.listCalled
}
