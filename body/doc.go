/*
Package body translates between stream-level XML elements and the BOSH
<body/> wrapper documents exchanged over HTTP (XEP-0124).

Wrapping is a pure function of the outgoing element and the session's
current request state (Params): stream-open elements produce a
session-creation or stream-restart body, stream-close elements a
type="terminate" body carrying a farewell presence, and any other
element a body with the stanza as its single child. The request id is
always packed as its decimal string form; the session id attribute is
omitted entirely while unbound.

Unwrapping classifies an inbound reply body by its attributes
(terminate, stream start carrying an xmpp:version, or normal) and
returns the stream-level elements to deliver, any synthesized
stream-open or stream-close marker first, the body's children following
in document order.

Elements are xmlquery node trees throughout; the Parser turns raw HTTP
reply payloads into wrapper body elements.
*/
package body
