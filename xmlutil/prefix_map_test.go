package xmlutil

import (
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
)

func TestPrefixMap(t *testing.T) {
	n := parseFirst(t,
		`<body xmlns="http://jabber.org/protocol/httpbind"`+
			` xmlns:xmpp="urn:xmpp:xbosh"`+
			` xmlns:stream="http://etherx.jabber.org/streams"/>`)

	m := NewPrefixMap(n.Attr...)
	assert.Equal(t, "urn:xmpp:xbosh", m.Namespace("xmpp"))
	assert.Equal(t, "http://etherx.jabber.org/streams", m.Namespace("stream"))
	// the default namespace declaration is not a prefix
	assert.Empty(t, m.Namespace("xmlns"))

	assert.Equal(t, []string{"stream"}, m.Prefix("http://etherx.jabber.org/streams"))
	assert.Empty(t, m.Prefix("urn:unknown"))

	attrs := m.Attr()
	if assert.Len(t, attrs, 2) {
		assert.Equal(t, xmlquery.Attr{Name: XMLName("stream", "xmlns"), Value: "http://etherx.jabber.org/streams"}, attrs[0])
		assert.Equal(t, xmlquery.Attr{Name: XMLName("xmpp", "xmlns"), Value: "urn:xmpp:xbosh"}, attrs[1])
	}
}

func TestPrefixMapEmpty(t *testing.T) {
	assert.Nil(t, PrefixMap{}.Attr())
}
