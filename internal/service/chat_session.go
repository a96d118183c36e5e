package service

import (
	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/Knoblauchpilze/backend-toolkit/pkg/logger"
	"github.com/bitsacm/pollz-client/pkg/chat"
	"github.com/bitsacm/pollz-client/pkg/messages"
	"github.com/bitsacm/pollz-client/pkg/session"
)

// ChatSession ties the connection manager and the message reconciler
// together and is what the rest of the application interacts with.
// Messages sent through it are not appended locally: they show up in
// the log once the chat service broadcasts them back.
type ChatSession interface {
	Start()
	Stop()

	Status() chat.ConnectionState
	Messages() []messages.ChatMessage

	SendText(body string) error
	SendSuperChat(body string, amount float64, paymentId string) error

	Reconnect()
}

// Events lets the application react to session activity, e.g. to
// render incoming messages or a connection status indicator. All
// fields are optional.
type Events struct {
	OnMessage      messages.OnAppend
	OnConnected    func()
	OnDisconnected func()
}

type ChatSessionProps struct {
	Config chat.Config
	Events Events
	Log    logger.Logger

	// Forwarded to the connection manager, used by tests.
	Dial chat.DialFunc
}

type chatSessionImpl struct {
	user       session.User
	manager    chat.Manager
	messageLog messages.Log
	log        logger.Logger
}

func NewChatSession(props ChatSessionProps) ChatSession {
	messageLog := messages.NewLog()
	reconciler := messages.NewReconciler(messageLog, props.Events.OnMessage, props.Log)

	callbacks := chat.Callbacks{
		ConnectCallback:    props.Events.OnConnected,
		DisconnectCallback: props.Events.OnDisconnected,
		MessageCallback:    reconciler.OnFrame,
	}

	manager := chat.NewManager(chat.Props{
		Config:    props.Config,
		Callbacks: callbacks,
		Log:       props.Log,
		Dial:      props.Dial,
	})

	return &chatSessionImpl{
		user:       props.Config.User,
		manager:    manager,
		messageLog: messageLog,
		log:        props.Log,
	}
}

func (s *chatSessionImpl) Start() {
	s.manager.Connect()
}

func (s *chatSessionImpl) Stop() {
	s.manager.Close()
}

func (s *chatSessionImpl) Status() chat.ConnectionState {
	return s.manager.Status()
}

func (s *chatSessionImpl) Messages() []messages.ChatMessage {
	return s.messageLog.All()
}

func (s *chatSessionImpl) SendText(body string) error {
	if err := s.validateSend(body); err != nil {
		return err
	}

	return s.manager.Send(messages.NewTextMessage(s.user, body))
}

func (s *chatSessionImpl) SendSuperChat(body string, amount float64, paymentId string) error {
	if err := s.validateSend(body); err != nil {
		return err
	}

	msg := messages.NewSuperChatMessage(s.user, body, amount, paymentId)
	return s.manager.Send(msg)
}

func (s *chatSessionImpl) Reconnect() {
	s.manager.ManualReconnect()
}

func (s *chatSessionImpl) validateSend(body string) error {
	if !s.user.LoggedIn() {
		return errors.NewCode(ErrNotLoggedIn)
	}

	return messages.ValidateBody(body)
}
