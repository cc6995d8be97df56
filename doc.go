/*
Package bosh is a client-side BOSH (XEP-0124) session manager.

BOSH tunnels a stream-oriented XML protocol, typically XMPP, over
sequential HTTP request/response pairs. Each logical send becomes one
HTTP POST carrying a <body/> wrapper document; each HTTP reply is
unwrapped into zero or more stream-level elements delivered to the
session owner. The server holds requests open (long polling) so it can
push stanzas to the client, which keeps at least one request
outstanding at all times.

The session subdirectory holds the session state machine: request-id
(rid) sequencing, session-id (sid) acquisition and binding, in-flight
request accounting and keep-alive polling, all owned by a single
control goroutine reachable through a copyable Handle. The body
subdirectory holds the pure wrapper/unwrapper translating between
stream elements and <body/> documents, and transport the asynchronous
HTTP dispatch layer.

This binding is plaintext, uncompressed HTTP-transported XML; TLS
upgrade and zlib compression of the XML stream are reported as
unsupported (TLS at the HTTP layer is the HTTP client's affair and is
not negotiated here).

See the session package for usage.
*/
package bosh
