package body

import (
	"github.com/antchfx/xmlquery"

	"github.com/arcusfelis/bosh/xmlutil"
)

const (
	// NSHTTPBind is the BOSH wrapper body namespace.
	NSHTTPBind = "http://jabber.org/protocol/httpbind"
	// NSXBOSH is the XMPP-over-BOSH extension namespace (XEP-0206).
	NSXBOSH = "urn:xmpp:xbosh"
	// NSStreams is the XML streams namespace.
	NSStreams = "http://etherx.jabber.org/streams"
	// NSClient is the jabber client stanza namespace.
	NSClient = "jabber:client"

	// DefaultVersion is the stream version packed when the outgoing
	// stream-open element does not carry one.
	DefaultVersion = "1.0"
	// DefaultLang is the stream language packed when the outgoing
	// stream-open element does not carry one, and the language of
	// synthesized stream-open elements.
	DefaultLang = "en"
	// DefaultWait is the longest pause, in seconds, the client asks the
	// connection manager to hold a request open for.
	DefaultWait = 60
	// DefaultHold is the number of requests the client asks the
	// connection manager to keep pending.
	DefaultHold = 1
)

// NewStreamOpen returns a stream-open element addressed to the domain
// to, carrying the conventional client stream namespace declarations.
func NewStreamOpen(to string) *xmlquery.Node {
	return &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Prefix:       "stream",
		Data:         "stream",
		NamespaceURI: NSStreams,
		Attr: []xmlquery.Attr{
			{Name: xmlutil.XMLName("to"), Value: to},
			{Name: xmlutil.XMLName("version"), Value: DefaultVersion},
			{Name: xmlutil.XMLName("lang", "xml"), Value: DefaultLang},
			{Name: xmlutil.XMLName("xmlns"), Value: NSClient},
			{Name: xmlutil.XMLName("stream", "xmlns"), Value: NSStreams},
		},
	}
}

// NewStreamClose returns the stream-close marker element. The marker
// carries no attributes; that is what distinguishes it from a
// stream-open element.
func NewStreamClose() *xmlquery.Node {
	return &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Prefix:       "stream",
		Data:         "stream",
		NamespaceURI: NSStreams,
	}
}

func isStreamElement(el *xmlquery.Node) bool {
	return el != nil && el.Type == xmlquery.ElementNode &&
		el.Prefix == "stream" && el.Data == "stream"
}

// IsStreamOpen reports whether el is a stream-open element.
func IsStreamOpen(el *xmlquery.Node) bool {
	return isStreamElement(el) && len(el.Attr) > 0
}

// IsStreamClose reports whether el is a stream-close marker, as
// produced by NewStreamClose or synthesized from a terminate reply.
func IsStreamClose(el *xmlquery.Node) bool {
	return isStreamElement(el) && len(el.Attr) == 0
}
