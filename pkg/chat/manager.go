package chat

import (
	"context"
	"sync"
	"time"

	bterr "github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/bitsacm/pollz-client/pkg/errors"
	"github.com/bitsacm/pollz-client/pkg/messages"
	"github.com/coder/websocket"
)

// Manager owns the single live connection to the chat service and
// mediates all of its lifecycle events. Failures never cross the
// contract boundary: they are surfaced as state transitions and
// callback invocations only.
type Manager interface {
	// Connect is a no-op while a connection attempt is in flight or a
	// connection is established. It also silently refuses to dial when
	// the automatic reconnection policy is exhausted: only a manual
	// reconnect clears that situation.
	Connect()

	// ManualReconnect resets the reconnection policy and connects. This
	// is the only way to escape a cap-exhausted disconnected state.
	ManualReconnect()

	// Send transmits one frame, stamped with the send time. It fails
	// without touching the transport unless the manager is connected.
	Send(msg messages.Outbound) error

	Status() ConnectionState

	// Close tears the session down: it cancels any pending reconnection
	// attempt, detaches the transport so late events cannot mutate
	// state anymore and closes the connection cleanly.
	Close()
}

type Props struct {
	Config    Config
	Callbacks Callbacks
	Log       logger.Logger

	// Overrides how the transport is established, used by tests to
	// inject a fake chat service.
	Dial DialFunc
}

type managerImpl struct {
	config    Config
	callbacks Callbacks
	log       logger.Logger
	dial      DialFunc

	lock           sync.Mutex
	state          ConnectionState
	transport      Transport
	policy         reconnectPolicy
	reconnectTimer *time.Timer
	// Incremented whenever the current transport is detached. Events
	// carrying a stale generation are ignored: this is what prevents a
	// torn-down connection from delivering into a live session.
	generation int
	closed     bool

	wg sync.WaitGroup
}

func NewManager(props Props) Manager {
	dial := props.Dial
	if dial == nil {
		dial = dialWebsocket
	}

	return &managerImpl{
		config:    props.Config,
		callbacks: props.Callbacks,
		log:       props.Log,
		dial:      dial,

		state:  IDLE,
		policy: newReconnectPolicy(props.Config),
	}
}

func (m *managerImpl) Connect() {
	m.lock.Lock()

	if m.closed {
		m.lock.Unlock()
		return
	}
	if m.state == CONNECTING || m.state == CONNECTED {
		m.lock.Unlock()
		return
	}
	if m.policy.exhausted() {
		m.state = DISCONNECTED
		m.lock.Unlock()
		m.log.Debugf("Reconnection attempts exhausted, waiting for manual reconnect")
		return
	}

	m.cancelReconnectTimerLocked()

	// Detach any stale transport before dialing so that a leftover
	// connection cannot deliver events into the new session.
	m.generation++
	stale := m.transport
	m.transport = nil
	m.state = CONNECTING

	generation := m.generation
	m.wg.Add(1)
	m.lock.Unlock()

	if stale != nil {
		// Voluntarily ignoring errors: the transport is already dead
		// to us.
		stale.Close(websocket.StatusNormalClosure, "superseded")
	}

	go m.dialAndListen(generation)
}

func (m *managerImpl) ManualReconnect() {
	m.lock.Lock()
	if m.closed {
		m.lock.Unlock()
		return
	}

	m.policy.reset()
	m.cancelReconnectTimerLocked()
	m.lock.Unlock()

	m.Connect()
}

func (m *managerImpl) Send(msg messages.Outbound) error {
	m.lock.Lock()
	transport := m.transport
	connected := m.state == CONNECTED
	m.lock.Unlock()

	if !connected || transport == nil {
		return bterr.NewCode(ErrNotConnected)
	}

	data, err := messages.Encode(msg, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := transport.Write(context.Background(), data); err != nil {
		return bterr.WrapCode(err, ErrSendFailed)
	}

	return nil
}

func (m *managerImpl) Status() ConnectionState {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.state
}

func (m *managerImpl) Close() {
	m.lock.Lock()
	if m.closed {
		m.lock.Unlock()
		return
	}

	m.closed = true
	m.cancelReconnectTimerLocked()
	m.generation++
	transport := m.transport
	m.transport = nil
	m.state = DISCONNECTED
	m.lock.Unlock()

	if transport != nil {
		// Voluntarily ignoring errors: there's not much we can do
		// about them at this point.
		transport.Close(websocket.StatusNormalClosure, "session closed")
	}

	m.wg.Wait()
}

func (m *managerImpl) dialAndListen(generation int) {
	defer m.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), m.config.DialTimeout)
	defer cancel()

	transport, err := m.dial(ctx, m.config.liveChatUrl())
	if err != nil {
		m.log.Warnf("Failed to reach chat service: %v", err)
		m.handleConnectionLost(generation, err)
		return
	}

	m.lock.Lock()
	if m.closed || generation != m.generation {
		m.lock.Unlock()
		// A teardown or a newer connection superseded this dial.
		transport.Close(websocket.StatusNormalClosure, "superseded")
		return
	}

	m.transport = transport
	m.state = CONNECTED
	m.policy.reset()
	m.lock.Unlock()

	m.log.Infof("Connected to chat service")
	m.invokeCallback(m.callbacks.OnConnect, "Connect")

	m.readLoop(generation, transport)
}

func (m *managerImpl) readLoop(generation int, transport Transport) {
	for {
		data, err := transport.Read(context.Background())
		if err != nil {
			m.handleConnectionLost(generation, err)
			return
		}

		cb := func() {
			m.callbacks.OnMessage(data)
		}
		m.invokeCallback(cb, "Message")
	}
}

func (m *managerImpl) handleConnectionLost(generation int, cause error) {
	m.lock.Lock()
	if m.closed || generation != m.generation {
		// This connection was already detached: its demise is nobody's
		// business anymore.
		m.lock.Unlock()
		return
	}

	m.transport = nil
	m.state = DISCONNECTED

	if !isCleanClose(cause) && !m.policy.exhausted() {
		delay := m.policy.next()
		attempt := m.policy.attempts
		m.reconnectTimer = time.AfterFunc(delay, m.Connect)
		m.lock.Unlock()

		m.log.Warnf(
			"Lost connection to chat service (cause: %v), reconnecting in %v (attempt %d)",
			cause, delay, attempt,
		)
	} else {
		m.lock.Unlock()
		m.log.Warnf("Lost connection to chat service (cause: %v)", cause)
	}

	m.invokeCallback(m.callbacks.OnDisconnect, "Disconnect")
}

func (m *managerImpl) cancelReconnectTimerLocked() {
	if m.reconnectTimer != nil {
		m.reconnectTimer.Stop()
		m.reconnectTimer = nil
	}
}

func (m *managerImpl) invokeCallback(proc errors.Process, name string) {
	if err := errors.SafeRunSync(proc); err != nil {
		m.log.Warnf("%s callback failed with err: %v", name, err)
	}
}

// isCleanClose tells whether the connection was terminated on purpose,
// as opposed to a network fault or a server-side abort. Only non-clean
// closures trigger automatic reconnection.
func isCleanClose(err error) bool {
	return websocket.CloseStatus(err) == websocket.StatusNormalClosure
}
