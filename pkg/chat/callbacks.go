package chat

// OnConnect is called once the connection to the chat service is
// established. The chat service pushes the message history right after,
// so consumers usually have nothing to request here.
type OnConnect func()

// OnDisconnect is called whenever the connection is lost, whatever the
// cause. Reconnection is handled internally by the manager.
type OnDisconnect func()

// OnMessage is called for every raw frame received from the chat
// service.
type OnMessage func(data []byte)

type Callbacks struct {
	ConnectCallback    OnConnect
	DisconnectCallback OnDisconnect
	MessageCallback    OnMessage
}

func (c Callbacks) OnConnect() {
	if c.ConnectCallback != nil {
		c.ConnectCallback()
	}
}

func (c Callbacks) OnDisconnect() {
	if c.DisconnectCallback != nil {
		c.DisconnectCallback()
	}
}

func (c Callbacks) OnMessage(data []byte) {
	if c.MessageCallback != nil {
		c.MessageCallback(data)
	}
}
