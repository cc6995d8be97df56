package body

import (
	"github.com/antchfx/xmlquery"

	"github.com/arcusfelis/bosh/xmlutil"
)

// Unwrap returns the stream-level elements carried by the reply body b,
// in delivery order. A terminate body yields a leading stream-close
// marker; a body carrying an xmpp:version attribute is a stream start
// and yields a leading synthesized stream-open element; the body's
// child elements follow in document order in every case.
func Unwrap(b *xmlquery.Node) []*xmlquery.Node {
	var els []*xmlquery.Node
	if IsTerminate(b) {
		els = append(els, NewStreamClose())
	} else if version, ok := xmlutil.Attr(b, "version", NSXBOSH, "xmpp"); ok {
		els = append(els, synthesizeStreamOpen(b, version))
	}
	for c := b.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			els = append(els, c)
		}
	}
	return els
}

// IsTerminate reports whether the reply body b ends the stream.
func IsTerminate(b *xmlquery.Node) bool {
	return xmlutil.AttrOr(b, "type", "") == "terminate"
}

// Condition returns the terminal binding condition attribute of a
// terminate body, or the empty string for a plain graceful terminate.
func Condition(b *xmlquery.Node) string {
	return xmlutil.AttrOr(b, "condition", "")
}

// SID returns the reply body's session id attribute, if any. The
// session binds its sid from the first reply before any other
// processing.
func SID(b *xmlquery.Node) string {
	return xmlutil.AttrOr(b, "sid", "")
}

// synthesizeStreamOpen builds the stream-open element a stream-start
// reply stands for, taking the body's from attribute as the origin,
// the fixed language "en" and the conventional stream namespace
// declarations. A stream namespace declared on the body itself wins
// over the conventional one.
func synthesizeStreamOpen(b *xmlquery.Node, version string) *xmlquery.Node {
	streamNS := NSStreams
	if ns := xmlutil.NewPrefixMap(b.Attr...).Namespace("stream"); ns != "" {
		streamNS = ns
	}
	return &xmlquery.Node{
		Type:         xmlquery.ElementNode,
		Prefix:       "stream",
		Data:         "stream",
		NamespaceURI: streamNS,
		Attr: []xmlquery.Attr{
			{Name: xmlutil.XMLName("from"), Value: xmlutil.AttrOr(b, "from", "")},
			{Name: xmlutil.XMLName("version"), Value: version},
			{Name: xmlutil.XMLName("lang", "xml"), Value: DefaultLang},
			{Name: xmlutil.XMLName("xmlns"), Value: NSClient},
			{Name: xmlutil.XMLName("stream", "xmlns"), Value: streamNS},
		},
	}
}
