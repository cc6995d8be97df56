package transport

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	e := Endpoint{Host: "localhost", Port: 5280, Path: "/http-bind"}
	assert.Equal(t, "http://localhost:5280/http-bind", e.URL())
	assert.Equal(t, e.URL(), e.String())
}

// testEndpoint converts an httptest server URL into an Endpoint.
func testEndpoint(t *testing.T, srv *httptest.Server, path string) Endpoint {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return Endpoint{Host: u.Hostname(), Port: port, Path: path}
}

func TestHTTPPosterPost(t *testing.T) {
	var gotBody string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		io.WriteString(w, `<body xmlns="http://jabber.org/protocol/httpbind"/>`)
	}))
	defer srv.Close()

	p := &HTTPPoster{Endpoint: testEndpoint(t, srv, "/http-bind")}
	status, reply, err := p.Post([]byte(`<body rid="1"/>`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `<body rid="1"/>`, gotBody)
	assert.Equal(t, "text/xml; charset=utf-8", gotContentType)
	assert.True(t, strings.Contains(string(reply), "httpbind"))
}

func TestHTTPPosterStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := &HTTPPoster{Endpoint: testEndpoint(t, srv, "/")}
	status, _, err := p.Post(nil)
	// a non-2xx reply is not a Post error; classification is the
	// Dispatcher's job
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
}

func TestHTTPPosterNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := &HTTPPoster{Endpoint: testEndpoint(t, srv, "/")}
	_, _, err := p.Post(nil)
	assert.Error(t, err)
}
