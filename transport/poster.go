package transport

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const contentType = "text/xml; charset=utf-8"

// Endpoint is the (host, port, path) triple identifying a BOSH HTTP
// endpoint. It is immutable after session creation and safe to copy.
type Endpoint struct {
	Host string
	Port int
	Path string
}

// URL returns the endpoint's request URL. The binding itself speaks
// plain HTTP; wrapping the hop in TLS is the HTTP layer's affair and
// is not negotiated here.
func (e Endpoint) URL() string {
	return fmt.Sprintf("http://%s:%d%s", e.Host, e.Port, e.Path)
}

func (e Endpoint) String() string { return e.URL() }

// Poster performs a single synchronous HTTP POST of a body document,
// returning the HTTP status and reply payload. Implementations carry
// their own endpoint and timeout policy.
type Poster interface {
	Post(body []byte) (status int, reply []byte, err error)
}

// HTTPPoster is the net/http backed Poster.
//
// A nil Client uses a client without a timeout: BOSH long polls are
// held open by the server for up to the negotiated wait period, so no
// client-side deadline is imposed. Callers wanting one supply their
// own Client.
type HTTPPoster struct {
	Endpoint Endpoint
	Client   *http.Client
}

var defaultClient = &http.Client{}

// Post implements Poster.
func (p *HTTPPoster) Post(body []byte) (int, []byte, error) {
	client := p.Client
	if client == nil {
		client = defaultClient
	}
	resp, err := client.Post(p.Endpoint.URL(), contentType, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Wrap(err, "posting body")
	}
	defer resp.Body.Close()
	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.Wrap(err, "reading reply")
	}
	return resp.StatusCode, reply, nil
}
