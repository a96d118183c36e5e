package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
)

type readResult struct {
	data []byte
	err  error
}

type mockTransport struct {
	lock        sync.Mutex
	reads       chan readResult
	writes      [][]byte
	closeCalled int
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
	t.lock.Lock()
	t.closeCalled++
	t.lock.Unlock()

	t.pushRead(readResult{
		err: websocket.CloseError{
			Code:   code,
			Reason: reason,
		},
	})
	return nil
}

func (t *mockTransport) pushData(data []byte) {
	t.pushRead(readResult{data: data})
}

func (t *mockTransport) pushError(err error) {
	t.pushRead(readResult{err: err})
}

func (t *mockTransport) pushRead(res readResult) {
	select {
	case t.reads <- res:
	default:
	}
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
	calls      int
	err        error
	lastUrl    string
	transports []*mockTransport
}

func (d *mockDialer) dial(ctx context.Context, url string) (Transport, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.calls++
	d.lastUrl = url

	if d.err != nil {
		return nil, d.err
	}

	transport := newMockTransport()
	d.transports = append(d.transports, transport)
	return transport, nil
}

func (d *mockDialer) dialCount() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.calls
}

func (d *mockDialer) transportAt(index int) *mockTransport {
	d.lock.Lock()
	defer d.lock.Unlock()

	if index >= len(d.transports) {
		return nil
	}
	return d.transports[index]
}

var errDialRefused = fmt.Errorf("connection refused")

func newTestConfig() Config {
	config := DefaultConfig()
	config.ReconnectBaseDelay = 1 * time.Millisecond
	config.ReconnectMaxDelay = 5 * time.Millisecond
	config.DialTimeout = 100 * time.Millisecond
	return config
}
