package chat

import (
	"context"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
	"github.com/coder/websocket"
)

// Transport is the message-oriented connection to the chat service.
// The connection manager is its only owner: consumers never hold one.
type Transport interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close(code websocket.StatusCode, reason string) error
}

type DialFunc func(ctx context.Context, url string) (Transport, error)

type websocketTransport struct {
	conn *websocket.Conn
}

func dialWebsocket(ctx context.Context, url string) (Transport, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, errors.WrapCode(err, ErrConnectionFailed)
	}

	return &websocketTransport{
		conn: conn,
	}, nil
}

func (t *websocketTransport) Read(ctx context.Context) ([]byte, error) {
	// The error is returned as is so that the close status the server
	// sent (if any) can still be extracted from it.
	_, data, err := t.conn.Read(ctx)
	return data, err
}

func (t *websocketTransport) Write(ctx context.Context, data []byte) error {
	return t.conn.Write(ctx, websocket.MessageText, data)
}

func (t *websocketTransport) Close(code websocket.StatusCode, reason string) error {
	return t.conn.Close(code, reason)
}
