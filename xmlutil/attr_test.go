package xmlutil

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFirst(t *testing.T, s string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlquery.Parse(strings.NewReader(s))
	require.NoError(t, err)
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n
		}
	}
	t.Fatal("no element in input")
	return nil
}

func TestAttr(t *testing.T) {
	n := parseFirst(t,
		`<body sid="abc" xmlns="urn:x" xmlns:xmpp="urn:xmpp:xbosh" xmpp:version="1.0" xml:lang="en"/>`)

	for _, tc := range []struct {
		local  string
		spaces []string
		want   string
		wantOK bool
	}{
		{local: "sid", want: "abc", wantOK: true},
		{local: "missing"},
		// a prefixed attribute must not match an unprefixed lookup
		{local: "version"},
		{local: "version", spaces: []string{"urn:xmpp:xbosh", "xmpp"}, want: "1.0", wantOK: true},
		{local: "lang", spaces: []string{"xml", "http://www.w3.org/XML/1998/namespace"}, want: "en", wantOK: true},
	} {
		v, ok := Attr(n, tc.local, tc.spaces...)
		assert.Equal(t, tc.wantOK, ok, "attr %q", tc.local)
		assert.Equal(t, tc.want, v, "attr %q", tc.local)
	}
}

func TestAttrNil(t *testing.T) {
	v, ok := Attr(nil, "sid")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestAttrOr(t *testing.T) {
	n := parseFirst(t, `<stream:stream xmlns:stream="urn:s" to="wonderland.lit"/>`)
	assert.Equal(t, "wonderland.lit", AttrOr(n, "to", "localhost"))
	assert.Equal(t, "localhost", AttrOr(n, "from", "localhost"))
}
