package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcusfelis/bosh/xmlutil"
)

func TestUnwrapStreamStart(t *testing.T) {
	b := reparse(t, []byte(`<body xmlns="http://jabber.org/protocol/httpbind"
		xmlns:xmpp="urn:xmpp:xbosh" xmlns:stream="http://etherx.jabber.org/streams"
		xmpp:version="1.0" from="wonderland.lit" sid="abc123" wait="60" hold="1">
		<stream:features><bind xmlns="urn:ietf:params:xml:ns:xmpp-bind"/></stream:features>
	</body>`))

	assert.Equal(t, "abc123", SID(b))
	assert.False(t, IsTerminate(b))

	els := Unwrap(b)
	require.Len(t, els, 2)

	open := els[0]
	assert.True(t, IsStreamOpen(open))
	assert.Equal(t, "wonderland.lit", plainAttr(t, open, "from"))
	assert.Equal(t, "1.0", plainAttr(t, open, "version"))
	lang, _ := xmlutil.Attr(open, "lang", "xml", nsXML)
	assert.Equal(t, "en", lang)
	assert.Equal(t, NSClient, plainAttr(t, open, "xmlns"))

	assert.Equal(t, "features", els[1].Data)
}

func TestUnwrapTerminate(t *testing.T) {
	for _, tc := range []struct {
		name          string
		input         string
		wantCondition string
	}{
		{
			name:  "graceful",
			input: `<body type="terminate" xmlns="http://jabber.org/protocol/httpbind"/>`,
		},
		{
			name: "condition",
			input: `<body type="terminate" condition="item-not-found"` +
				` xmlns="http://jabber.org/protocol/httpbind"/>`,
			wantCondition: "item-not-found",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := reparse(t, []byte(tc.input))
			assert.True(t, IsTerminate(b))
			assert.Equal(t, tc.wantCondition, Condition(b))

			els := Unwrap(b)
			require.Len(t, els, 1)
			assert.True(t, IsStreamClose(els[0]))
		})
	}
}

func TestUnwrapNormal(t *testing.T) {
	b := reparse(t, []byte(`<body xmlns="http://jabber.org/protocol/httpbind" sid="abc123">
		<message xmlns="jabber:client" from="alice@wonderland.lit"><body>hi</body></message>
		<presence xmlns="jabber:client" from="rabbit@wonderland.lit"/>
	</body>`))

	els := Unwrap(b)
	require.Len(t, els, 2)
	// children are delivered in document order
	assert.Equal(t, "message", els[0].Data)
	assert.Equal(t, "presence", els[1].Data)
}

func TestUnwrapEmpty(t *testing.T) {
	b := reparse(t, []byte(`<body xmlns="http://jabber.org/protocol/httpbind" sid="abc123"/>`))
	assert.Empty(t, Unwrap(b))
}

func TestUnwrapRoundTrip(t *testing.T) {
	// wrapping a stream open and unwrapping the matching reply recovers
	// an element with the policy defaults for the absent attributes
	open := NewStreamOpen("wonderland.lit")
	reparse(t, Wrap(open, Params{RID: 1}))

	reply := reparse(t, []byte(`<body xmlns="http://jabber.org/protocol/httpbind"
		xmlns:xmpp="urn:xmpp:xbosh" xmpp:version="1.0" from="wonderland.lit" sid="abc123"/>`))
	els := Unwrap(reply)
	require.Len(t, els, 1)

	synth := els[0]
	assert.Equal(t, plainAttr(t, open, "version"), plainAttr(t, synth, "version"))
	wantLang, _ := xmlutil.Attr(open, "lang", "xml", nsXML)
	gotLang, _ := xmlutil.Attr(synth, "lang", "xml", nsXML)
	assert.Equal(t, wantLang, gotLang)
	assert.Equal(t, plainAttr(t, open, "to"), plainAttr(t, synth, "from"))
}
