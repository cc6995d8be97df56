/*
Package transport performs the HTTP side of the BOSH binding.

Each outgoing <body/> document becomes one HTTP POST against the
session's endpoint. The Poster interface is the contract consumed from
the HTTP layer; HTTPPoster is its net/http implementation. The
Dispatcher issues requests as independent fire-and-forget goroutines so
the session's control goroutine never blocks on network I/O, and
reports each completion, success or failure, as a Result value on the
session's results channel.
*/
package transport
