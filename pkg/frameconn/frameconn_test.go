package frameconn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binpack-go/binpack"
)

type ping struct {
	Seq  uint64
	Body string
}

func (p ping) EncodeBin(e *binpack.Encoder) error {
	if err := e.WriteU64(p.Seq); err != nil {
		return err
	}
	return e.WriteString(p.Body)
}

func (p *ping) DecodeBin(d *binpack.Decoder) error {
	var err error
	if p.Seq, err = d.ReadU64(); err != nil {
		return err
	}
	p.Body, err = d.ReadString()
	return err
}

func (p *ping) BorrowDecodeBin(d *binpack.Decoder) error { return p.DecodeBin(d) }

var upgrader = gorilla.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// echoServer upgrades each request and echoes every message back unchanged.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			mt, data, err := ws.ReadMessage()
			if err != nil {
				return
			}
			if err := ws.WriteMessage(mt, data); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestConn_roundTrip(t *testing.T) {
	srv := echoServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	want := ping{Seq: 7, Body: "hello over the wire"}
	require.NoError(t, c.Send(want))

	var got ping
	require.NoError(t, c.Recv(&got))
	assert.Equal(t, want, got)
}

func TestConn_config(t *testing.T) {
	srv := echoServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := binpack.Config{
		IntEncoding: binpack.IntEncodingFixed,
		ByteOrder:   binpack.BigEndian,
	}
	c, err := Dial(ctx, wsURL(srv), WithConfig(cfg))
	require.NoError(t, err)
	defer c.Close()

	want := ping{Seq: 1 << 40, Body: "fixed"}
	require.NoError(t, c.Send(want))

	var got ping
	require.NoError(t, c.RecvBorrowed(&got))
	assert.Equal(t, want, got)
}

func TestConn_nonBinaryFrame(t *testing.T) {
	srv := echoServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Dial(ctx, wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	// Bypass Send to push a text frame; the echo comes back as text.
	require.NoError(t, c.ws.WriteMessage(gorilla.TextMessage, []byte("nope")))

	var got ping
	err = c.Recv(&got)
	require.ErrorIs(t, err, ErrNotBinary)
}
