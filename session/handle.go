package session

import (
	"github.com/antchfx/xmlquery"

	"github.com/arcusfelis/bosh/bosherr"
	"github.com/arcusfelis/bosh/transport"
)

// Handle is a copyable descriptor of a running session: the endpoint
// tuple, the binding's capability flags and the control channel of the
// session's goroutine. The zero Handle is not usable; obtain one from
// Connect. All methods are safe for concurrent use. Commands sent to a
// session that has already stopped are silently dropped.
type Handle struct {
	endpoint transport.Endpoint
	s        *Session
}

// Endpoint returns the session's BOSH endpoint tuple.
func (h Handle) Endpoint() transport.Endpoint { return h.endpoint }

// Send enqueues el for wrapping and dispatch. Elements are wrapped and
// POSTed in call order, one body per HTTP request, each body carrying
// exactly one payload element (stream open, stream close, or a single
// stanza). Send never blocks on network I/O.
func (h Handle) Send(el *xmlquery.Node) { h.command(sendCmd{el: el}) }

// SendRaw dispatches a prebuilt body document, bypassing wrapping
// entirely. The caller supplies a complete protocol-correct body
// including rid and sid attributes; interleaving SendRaw with Send
// desynchronizes the request counter and must be avoided.
func (h Handle) SendRaw(data []byte) { h.command(sendRawCmd{data: data}) }

// Poll issues one empty-body request regardless of the keepalive mode.
func (h Handle) Poll() { h.command(pollCmd{}) }

// Pause asks the connection manager to defer its responses for up to
// the given number of seconds (XEP-0124, s12) by issuing an empty body
// carrying a pause attribute.
func (h Handle) Pause(seconds int) { h.command(pollCmd{pause: seconds}) }

// SetKeepalive toggles automatic empty-body polling when the in-flight
// request count drops to zero. It is enabled by default; with it
// disabled the caller drives polling through Poll.
func (h Handle) SetKeepalive(on bool) { h.command(keepaliveCmd{on: on}) }

// ResetParser atomically replaces the session's reply parser, leaving
// rid, sid and in-flight request accounting untouched. Upper layers
// use it to restart stream parsing without tearing down the HTTP
// session.
func (h Handle) ResetParser() { h.command(resetParserCmd{}) }

// IsConnected reports whether the session's control goroutine is
// alive. It does not imply the HTTP endpoint is reachable.
func (h Handle) IsConnected() bool {
	select {
	case <-h.s.done:
		return false
	default:
		return true
	}
}

// Stop sends a stream-termination body and stops the session.
// In-flight requests are not cancelled; their completions are
// discarded. Exactly one caller stops the session; any other Stop,
// concurrent or later, returns bosherr.ErrAlreadyStopped.
func (h Handle) Stop() error {
	cmd := stopCmd{reply: make(chan error, 1)}
	select {
	case h.s.cmds <- cmd:
	case <-h.s.done:
		return bosherr.ErrAlreadyStopped
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-h.s.done:
		// the acknowledgement races the control goroutine's exit;
		// an unacknowledged command lost to another stopper
		select {
		case err := <-cmd.reply:
			return err
		default:
			return bosherr.ErrAlreadyStopped
		}
	}
}

// UpgradeToTLS reports that TLS upgrade is not supported: this binding
// is plaintext HTTP-transported XML. TLS on the HTTP hop itself is
// orthogonal and not negotiated here.
func (h Handle) UpgradeToTLS() error { return bosherr.ErrUnsupported }

// UseZLIB reports that stream compression is not supported by this
// binding.
func (h Handle) UseZLIB() error { return bosherr.ErrUnsupported }

// TLS is the binding's TLS capability flag; permanently false.
func (h Handle) TLS() bool { return false }

// Compression is the binding's compression capability flag;
// permanently false.
func (h Handle) Compression() bool { return false }

// SID returns the server-assigned session id, or the empty string
// while unbound.
func (h Handle) SID() string { return h.query().sid }

// RID returns the request id the next outgoing body will carry.
func (h Handle) RID() int64 { return h.query().rid }

// PendingRequests returns the number of HTTP requests issued but not
// yet completed.
func (h Handle) PendingRequests() int { return h.query().pending }

// Status returns the session's lifecycle state.
func (h Handle) Status() Status { return h.query().status }

func (h Handle) command(cmd command) {
	select {
	case h.s.cmds <- cmd:
	case <-h.s.done:
	}
}

func (h Handle) query() snapshot {
	q := queryCmd{reply: make(chan snapshot, 1)}
	select {
	case h.s.cmds <- q:
	case <-h.s.done:
		return snapshot{status: StatusStopped}
	}
	select {
	case snap := <-q.reply:
		return snap
	case <-h.s.done:
		return snapshot{status: StatusStopped}
	}
}
