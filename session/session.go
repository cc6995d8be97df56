package session

import (
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/rs/zerolog"

	"github.com/arcusfelis/bosh/body"
	"github.com/arcusfelis/bosh/bosherr"
	"github.com/arcusfelis/bosh/transport"
)

// Config contains session configuration. The zero value connects to
// http://localhost:5280/http-bind.
type Config struct {
	// Host is the connection manager host. Defaults to "localhost".
	Host string
	// Port is the connection manager port. Defaults to 5280.
	Port int
	// Path is the HTTP binding path. Defaults to "/http-bind".
	Path string

	// To is the stream target domain packed into session-creation
	// bodies whose stream-open element does not name one. Defaults to
	// Host.
	To string
	// Wait and Hold are the long-poll parameters requested at session
	// creation; zero values take body.DefaultWait and body.DefaultHold.
	Wait int
	Hold int

	// Poster overrides the HTTP layer. A nil Poster posts with
	// net/http against the configured endpoint.
	Poster transport.Poster
	// Logger receives session debug logging. A nil Logger discards it.
	Logger *zerolog.Logger
}

// Handler is the session owner interface. Methods are invoked from a
// single delivery goroutine, preserving per-reply element order, and
// may call back into the session's Handle.
type Handler interface {
	// OnStanza is called for each stream-level element decoded from a
	// reply body: synthesized stream-open elements, stream-close
	// markers and ordinary stanzas alike.
	OnStanza(h Handle, el *xmlquery.Node)
	// OnError is called when a request fails at the transport layer
	// (bosherr.TransportError), a reply cannot be decoded
	// (bosherr.SessionFailed), or the server terminates the stream
	// with a condition (bosherr.Condition).
	OnError(h Handle, err error)
	// OnClose is called exactly once, after the session has stopped.
	OnClose(h Handle)
}

// Status is a session's lifecycle state.
type Status int

const (
	// StatusConnecting is the initial state, before the control
	// goroutine has started processing.
	StatusConnecting Status = iota
	// StatusActive indicates the session is processing sends and
	// replies.
	StatusActive
	// StatusStopping indicates a stream termination is underway and
	// only the final terminate body remains to be issued.
	StatusStopping
	// StatusStopped indicates the control goroutine has exited.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusActive:
		return "active"
	case StatusStopping:
		return "stopping"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session is the BOSH session state machine. All mutable state below
// the channels is owned by the control goroutine; callers interact
// through a Handle.
type Session struct {
	cfg      Config
	endpoint transport.Endpoint
	handler  Handler
	log      zerolog.Logger

	cmds       chan command
	results    chan transport.Result
	deliveries *deliveryQueue
	quit       chan struct{} // closed on teardown; discards late completions
	done       chan struct{} // closed when the control goroutine exits

	status    Status
	rid       int64
	sid       string
	pending   int
	keepalive bool
	parser    *body.Parser
	disp      *transport.Dispatcher
}

type command interface{}

type sendCmd struct{ el *xmlquery.Node }
type sendRawCmd struct{ data []byte }
type pollCmd struct{ pause int }
type resetParserCmd struct{}
type keepaliveCmd struct{ on bool }
type stopCmd struct{ reply chan error }
type queryCmd struct{ reply chan snapshot }

type snapshot struct {
	status  Status
	rid     int64
	sid     string
	pending int
}

// Connect starts a new session against the configured endpoint and
// returns its Handle. The session issues no HTTP request until the
// first Send, typically of a stream-open element.
func Connect(cfg Config, h Handler) (Handle, error) {
	if h == nil {
		return Handle{}, &bosherr.StartupError{Reason: "nil handler"}
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 5280
	}
	if cfg.Path == "" {
		cfg.Path = "/http-bind"
	}
	if cfg.To == "" {
		cfg.To = cfg.Host
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	ep := transport.Endpoint{Host: cfg.Host, Port: cfg.Port, Path: cfg.Path}
	poster := cfg.Poster
	if poster == nil {
		poster = &transport.HTTPPoster{Endpoint: ep}
	}

	s := &Session{
		cfg:        cfg,
		endpoint:   ep,
		handler:    h,
		log:        log,
		cmds:       make(chan command, 8),
		results:    make(chan transport.Result, 4),
		deliveries: newDeliveryQueue(),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		status:     StatusConnecting,
		rid:        seedRID(),
		keepalive:  true,
		parser:     body.NewParser(),
	}
	s.disp = &transport.Dispatcher{Poster: poster, Log: log, Quit: s.quit}

	go s.deliverLoop()
	go s.run()
	return Handle{endpoint: ep, s: s}, nil
}

// seedRID derives the initial request id from the wall clock, keeping
// it well inside the 2^53 ceiling XEP-0124 places on rid values while
// avoiding collisions across client restarts.
func seedRID() int64 {
	return time.Now().UnixNano() & (1<<50 - 1)
}

// run is the control goroutine. It is the sole mutator of session
// state.
func (s *Session) run() {
	s.log.Debug().Stringer("endpoint", s.endpoint).Int64("rid", s.rid).Msg("session started")
	s.status = StatusActive
	for s.status != StatusStopped {
		select {
		case cmd := <-s.cmds:
			s.handleCommand(cmd)
		case res := <-s.results:
			s.handleResult(res)
		}
	}
	s.teardown()
}

func (s *Session) handleCommand(cmd command) {
	switch cmd := cmd.(type) {
	case sendCmd:
		s.dispatch(func(p body.Params) []byte { return body.Wrap(cmd.el, p) })
	case sendRawCmd:
		// prebuilt body; the caller packed rid/sid themselves
		s.dispatch(func(body.Params) []byte { return cmd.data })
	case pollCmd:
		s.dispatch(func(p body.Params) []byte {
			p.Pause = cmd.pause
			return body.WrapEmpty(p)
		})
	case resetParserCmd:
		s.parser.Free()
		s.parser = body.NewParser()
		s.log.Debug().Msg("parser reset")
	case keepaliveCmd:
		s.keepalive = cmd.on
	case stopCmd:
		s.transition(StatusStopping)
		s.dispatch(func(p body.Params) []byte { return body.WrapStreamClose(p) })
		// the terminate body is in flight; nothing left to wait for
		s.transition(StatusStopped)
		cmd.reply <- nil
	case queryCmd:
		cmd.reply <- snapshot{status: s.status, rid: s.rid, sid: s.sid, pending: s.pending}
	}
}

func (s *Session) handleResult(res transport.Result) {
	s.pending--
	if res.Err != nil {
		s.fail(res.Err)
		return
	}
	b, err := s.parser.Parse(res.Reply)
	if err != nil {
		s.log.Warn().Err(err).Int64("rid", res.RID).Msg("undecodable reply")
		s.fail(&bosherr.SessionFailed{Err: err})
		return
	}
	if s.sid == "" {
		if sid := body.SID(b); sid != "" {
			s.sid = sid
			s.log.Debug().Str("sid", sid).Msg("session id bound")
		}
	}

	els := body.Unwrap(b)
	terminated := body.IsTerminate(b)
	if !terminated && s.keepalive && s.pending == 0 {
		// keep the long-poll channel open before anything else
		s.dispatch(func(p body.Params) []byte { return body.WrapEmpty(p) })
	}

	h := s.handle()
	for _, el := range els {
		el := el
		s.deliveries.push(func() { s.handler.OnStanza(h, el) })
	}
	if terminated {
		s.log.Debug().Str("condition", body.Condition(b)).Msg("stream terminated by server")
		if cond := body.Condition(b); cond != "" {
			c := bosherr.Condition(cond)
			s.deliveries.push(func() { s.handler.OnError(h, c) })
		}
		s.transition(StatusStopping)
		s.transition(StatusStopped)
	}
}

// dispatch consumes the next request id and issues one HTTP request
// carrying the built body. The rid packed into the body and the rid
// recorded as used are the same value, computed in this single step.
func (s *Session) dispatch(build func(body.Params) []byte) {
	if s.status != StatusActive && s.status != StatusStopping {
		return
	}
	p := body.Params{
		RID:  s.rid,
		SID:  s.sid,
		To:   s.cfg.To,
		Wait: s.cfg.Wait,
		Hold: s.cfg.Hold,
	}
	data := build(p)
	s.rid++
	s.pending++
	s.log.Debug().Int64("rid", p.RID).Int("pending", s.pending).Msg("dispatching request")
	s.disp.Dispatch(p.RID, data, s.results)
}

// fail reports err to the owner and stops the session.
func (s *Session) fail(err error) {
	h := s.handle()
	s.deliveries.push(func() { s.handler.OnError(h, err) })
	s.transition(StatusStopped)
}

func (s *Session) transition(next Status) {
	if s.status == next {
		return
	}
	s.log.Debug().Stringer("from", s.status).Stringer("to", next).Msg("state transition")
	s.status = next
}

// teardown runs once, after the control loop exits.
func (s *Session) teardown() {
	close(s.quit)
	s.parser.Free()
	close(s.done)
	h := s.handle()
	s.deliveries.push(func() { s.handler.OnClose(h) })
	s.deliveries.close()
	s.log.Debug().Msg("session stopped")
}

// deliverLoop invokes Handler callbacks in decode order, off the
// control goroutine so handlers may call back into the session. The
// queue is unbounded: delivering never blocks the control goroutine,
// however many elements a reply carries or however slow the owner is.
func (s *Session) deliverLoop() {
	s.deliveries.drain()
}

func (s *Session) handle() Handle {
	return Handle{endpoint: s.endpoint, s: s}
}
