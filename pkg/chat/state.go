package chat

type ConnectionState int

const (
	IDLE ConnectionState = iota
	CONNECTING
	CONNECTED
	DISCONNECTED
)

func (s ConnectionState) String() string {
	switch s {
	case IDLE:
		return "IDLE"
	case CONNECTING:
		return "CONNECTING"
	case CONNECTED:
		return "CONNECTED"
	case DISCONNECTED:
		return "DISCONNECTED"
	}

	return "UNKNOWN"
}
