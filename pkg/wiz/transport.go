package wiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultTimeout bounds the wait for a reply datagram.
	DefaultTimeout = 2 * time.Second

	// maxDatagram is the largest reply the bulb is known to send.
	maxDatagram = 1024
)

// Reply is the decoded response from the bulb.
type Reply struct {
	Method string         `json:"method"`
	Result map[string]any `json:"result"`
	Error  *DeviceError   `json:"error"`
}

// ExchangeRecorder receives a copy of every request/reply exchange.
// Implementations must tolerate a nil reply (send failed or no response).
type ExchangeRecorder interface {
	RecordExchange(ctx context.Context, method string, request, reply []byte, result error)
}

// Transport performs single-shot UDP request/reply exchanges with one bulb.
// Each Send opens its own ephemeral socket, so a Transport is safe for
// concurrent use without locking.
type Transport struct {
	addr     string
	timeout  time.Duration
	recorder ExchangeRecorder
}

// NewTransport creates a transport for the bulb at host:port. A timeout of
// zero or less selects DefaultTimeout.
func NewTransport(host string, port int, timeout time.Duration) *Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Transport{
		addr:    net.JoinHostPort(host, strconv.Itoa(port)),
		timeout: timeout,
	}
}

// SetRecorder attaches an optional exchange recorder. Recording is
// best-effort and never affects the outcome of Send.
func (t *Transport) SetRecorder(r ExchangeRecorder) {
	t.recorder = r
}

// Send serializes cmd, sends it as one datagram, and waits for a single
// reply. Exactly one datagram is sent per call; retries, if wanted, belong
// to the caller.
func (t *Transport) Send(ctx context.Context, cmd Command) (*Reply, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("marshal command: %w", err)
	}

	replyBytes, err := t.exchange(ctx, payload)

	if t.recorder != nil {
		t.recorder.RecordExchange(ctx, cmd.Method, payload, replyBytes, err)
	}

	if err != nil {
		log.Debug().Str("method", cmd.Method).Str("addr", t.addr).Err(err).Msg("exchange failed")
		return nil, err
	}

	var reply Reply
	if err := json.Unmarshal(replyBytes, &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if reply.Error != nil {
		return nil, reply.Error
	}

	log.Debug().Str("method", cmd.Method).Str("addr", t.addr).Msg("exchange ok")

	return &reply, nil
}

func (t *Transport) exchange(ctx context.Context, payload []byte) ([]byte, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", t.addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(t.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if _, err := conn.Write(payload); err != nil {
		return nil, classifyNetError(err)
	}

	buf := make([]byte, maxDatagram)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, classifyNetError(err)
	}

	return buf[:n], nil
}

func classifyNetError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
