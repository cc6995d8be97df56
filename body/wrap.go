package body

import (
	"encoding/xml"
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/arcusfelis/bosh/xmlutil"
)

const (
	contentType = "text/xml; charset=utf-8"

	// nsXML is where the decoder resolves the xml: prefix to.
	nsXML = "http://www.w3.org/XML/1998/namespace"
)

// Params carries the per-request session state the wrapper packs into
// each <body/> attribute set.
type Params struct {
	// RID is the request id this body will be posted with.
	RID int64
	// SID is the server-assigned session id; empty while unbound, in
	// which case no sid attribute is packed at all.
	SID string
	// To is the stream target domain packed into session-creation
	// bodies whose stream-open element does not name one.
	To string
	// Wait and Hold are the long-poll parameters requested at session
	// creation; zero values take DefaultWait and DefaultHold.
	Wait int
	Hold int
	// Pause, when positive, asks the connection manager to defer its
	// responses for up to that many seconds (XEP-0124, s12). It is only
	// packed onto empty bodies.
	Pause int
}

// Wrap returns the serialized <body/> document carrying el as its
// payload. Stream-open elements produce a session-creation body, or a
// stream-restart body once the sid is bound; stream-close elements
// produce a type="terminate" body carrying a farewell presence; any
// other element is packed as the body's single child.
func Wrap(el *xmlquery.Node, p Params) []byte {
	switch {
	case IsStreamOpen(el):
		return wrapStreamOpen(el, p)
	case IsStreamClose(el):
		return WrapStreamClose(p)
	default:
		return WrapStanza(el, p)
	}
}

// WrapEmpty returns an empty <body/> request: the keep-alive poll the
// long-polling server needs to push data on, or a pause request when
// p.Pause is set.
func WrapEmpty(p Params) []byte {
	b := newBody(p)
	if p.Pause > 0 {
		b.Attr = append(b.Attr, attr(xmlutil.XMLName("pause"), strconv.Itoa(p.Pause)))
	}
	return render(b)
}

// WrapStreamClose returns the <body type="terminate"/> document ending
// the session, carrying an unavailable presence as a graceful farewell.
func WrapStreamClose(p Params) []byte {
	b := newBody(p)
	b.Attr = append(b.Attr, attr(xmlutil.XMLName("type"), "terminate"))
	xmlquery.AddChild(b, &xmlquery.Node{
		Type: xmlquery.ElementNode,
		Data: "presence",
		Attr: []xmlquery.Attr{
			attr(xmlutil.XMLName("xmlns"), NSClient),
			attr(xmlutil.XMLName("type"), "unavailable"),
		},
	})
	return render(b)
}

// WrapStanza returns a <body/> document carrying stanza as its single
// child.
func WrapStanza(stanza *xmlquery.Node, p Params) []byte {
	b := newBody(p)
	xmlquery.AddChild(b, stanza)
	return render(b)
}

func wrapStreamOpen(el *xmlquery.Node, p Params) []byte {
	wait, hold := p.Wait, p.Hold
	if wait <= 0 {
		wait = DefaultWait
	}
	if hold <= 0 {
		hold = DefaultHold
	}
	b := newBody(p)
	b.Attr = append(b.Attr,
		attr(xmlutil.XMLName("content-type"), contentType),
		attr(xmlutil.XMLName("xmpp", "xmlns"), NSXBOSH),
		attr(xmlutil.XMLName("version", "xmpp"), xmlutil.AttrOr(el, "version", DefaultVersion)),
		attr(xmlutil.XMLName("hold"), strconv.Itoa(hold)),
		attr(xmlutil.XMLName("wait"), strconv.Itoa(wait)),
		attr(xmlutil.XMLName("lang", "xml"), streamLang(el)),
		attr(xmlutil.XMLName("to"), xmlutil.AttrOr(el, "to", p.To)),
	)
	if p.SID != "" {
		// a stream open on a bound session is an in-place restart
		b.Attr = append(b.Attr, attr(xmlutil.XMLName("restart", "xmpp"), "true"))
	}
	return render(b)
}

// newBody returns a wrapper body element carrying the rid, the BOSH
// namespace and, once bound, the sid. The rid is always packed as its
// decimal string form.
func newBody(p Params) *xmlquery.Node {
	b := &xmlquery.Node{
		Type: xmlquery.ElementNode,
		Data: "body",
		Attr: []xmlquery.Attr{
			attr(xmlutil.XMLName("rid"), strconv.FormatInt(p.RID, 10)),
			attr(xmlutil.XMLName("xmlns"), NSHTTPBind),
		},
	}
	if p.SID != "" {
		b.Attr = append(b.Attr, attr(xmlutil.XMLName("sid"), p.SID))
	}
	return b
}

func streamLang(el *xmlquery.Node) string {
	if v, ok := xmlutil.Attr(el, "lang", "xml", nsXML); ok {
		return v
	}
	return DefaultLang
}

func render(b *xmlquery.Node) []byte { return []byte(b.OutputXML(true)) }

func attr(name xml.Name, value string) xmlquery.Attr {
	return xmlquery.Attr{Name: name, Value: value}
}
