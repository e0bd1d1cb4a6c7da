// Package frameconn drives binpack over a websocket connection, one encoded
// value per binary message. The message boundary is the frame: every Send
// marshals exactly one top-level value, every Recv decodes exactly one. No
// retry, no handshake, no cancellation beyond what the underlying connection
// offers.
package frameconn

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/binpack-go/binpack"
)

// ErrNotBinary reports an incoming message that is not a binary frame.
var ErrNotBinary = errors.New("frameconn: received non-binary message")

// DefaultDialer is the gorilla dialer used by Dial, with compression enabled
// and the binpack subprotocol announced.
var DefaultDialer = &gorilla.Dialer{
	Proxy:             gorilla.DefaultDialer.Proxy,
	HandshakeTimeout:  gorilla.DefaultDialer.HandshakeTimeout,
	EnableCompression: true,
	Subprotocols:      []string{"binpack"},
}

type Option func(c *Conn)

// WithConfig sets the wire format config; both peers must agree on it.
func WithConfig(cfg binpack.Config) Option {
	return func(c *Conn) { c.cfg = cfg }
}

// WithLogger sets the logger for frame-level debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Conn) { c.log = log }
}

// Conn frames binpack values over a websocket connection.
type Conn struct {
	ws  *gorilla.Conn
	cfg binpack.Config
	log zerolog.Logger

	// gorilla allows at most one concurrent writer and one concurrent
	// reader; each side gets its own guard.
	wmu sync.Mutex
	rmu sync.Mutex
}

// Wrap frames values over an established websocket connection.
func Wrap(ws *gorilla.Conn, opts ...Option) *Conn {
	c := &Conn{
		ws:  ws,
		cfg: binpack.DefaultConfig(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to url and wraps the resulting connection.
func Dial(ctx context.Context, url string, opts ...Option) (*Conn, error) {
	ws, res, err := DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "frameconn: dial %s", url)
	}
	defer res.Body.Close()
	return Wrap(ws, opts...), nil
}

// Send marshals v and writes it as one binary message.
func (c *Conn) Send(v binpack.Encodable) error {
	data, err := binpack.MarshalWith(c.cfg, v)
	if err != nil {
		return err
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if err := c.ws.WriteMessage(gorilla.BinaryMessage, data); err != nil {
		return errors.Wrap(err, "frameconn: write message")
	}
	c.log.Debug().Int("bytes", len(data)).Msg("frame sent")
	return nil
}

// Recv reads one binary message and decodes it into v.
func (c *Conn) Recv(v binpack.Decodable) error {
	data, err := c.read()
	if err != nil {
		return err
	}
	return binpack.UnmarshalWith(c.cfg, data, v)
}

// RecvBorrowed reads one binary message and borrow-decodes it into v. The
// message buffer is allocated per message and handed to the decoded value, so
// aliasing it is safe for as long as v is live.
func (c *Conn) RecvBorrowed(v binpack.BorrowDecodable) error {
	data, err := c.read()
	if err != nil {
		return err
	}
	return binpack.BorrowUnmarshalWith(c.cfg, data, v)
}

func (c *Conn) read() ([]byte, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()
	mt, data, err := c.ws.ReadMessage()
	if err != nil {
		return nil, errors.Wrap(err, "frameconn: read message")
	}
	if mt != gorilla.BinaryMessage {
		c.log.Warn().Int("type", mt).Msg("dropping non-binary frame")
		return nil, ErrNotBinary
	}
	c.log.Debug().Int("bytes", len(data)).Msg("frame received")
	return data, nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.ws.Close()
}
