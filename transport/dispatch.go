package transport

import (
	"github.com/rs/zerolog"

	"github.com/arcusfelis/bosh/bosherr"
)

// Result is the completion of one dispatched request. Err is set for
// network failures and non-2xx statuses; the session treats either as
// a bosherr.TransportError, never as a fatal abort.
type Result struct {
	RID    int64
	Status int
	Reply  []byte
	Err    error
}

// Dispatcher issues BOSH requests as independent goroutines and
// delivers completions to the owning session's results channel. The
// caller is never blocked on network I/O.
type Dispatcher struct {
	Poster Poster
	Log    zerolog.Logger
	// Quit, once closed, releases dispatch goroutines whose results
	// nobody will read anymore. In-flight requests are not cancelled;
	// their completions are discarded.
	Quit <-chan struct{}
}

// Dispatch posts body as request rid and reports the completion on
// results.
func (d *Dispatcher) Dispatch(rid int64, body []byte, results chan<- Result) {
	go func() {
		status, reply, err := d.Poster.Post(body)
		if err != nil {
			err = &bosherr.TransportError{RID: rid, Err: err}
		} else if status < 200 || status > 299 {
			err = &bosherr.TransportError{RID: rid, Status: status}
		}
		if err != nil {
			d.Log.Warn().Int64("rid", rid).Err(err).Msg("request failed")
		} else {
			d.Log.Debug().Int64("rid", rid).Int("status", status).
				Int("bytes", len(reply)).Msg("reply received")
		}
		select {
		case results <- Result{RID: rid, Status: status, Reply: reply, Err: err}:
		case <-d.Quit:
		}
	}()
}
