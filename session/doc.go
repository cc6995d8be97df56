/*
Package session implements the BOSH client session state machine.

One session is one control goroutine owning all mutable session state:
the request counter (rid), the server-assigned session id (sid), the
in-flight request count and the reply parser. Commands (Send, SendRaw,
Stop, ResetParser, queries) and asynchronous HTTP completions reach the
control goroutine as channel messages, so no state is ever mutated
concurrently and no locks are needed.

Session overview

Connect starts the control goroutine and returns a Handle, a copyable
descriptor carrying the endpoint tuple and the session's control
channel. The owner implements the Handler interface to receive decoded
stream elements (OnStanza), transport or stream failures (OnError) and
the final close notification (OnClose). Handler methods are invoked
from a single delivery goroutine in decode order; they may call back
into the Handle.

Every logical send becomes one HTTP POST carrying exactly one payload
element. Requests are issued in strict rid order, each rid exactly one
greater than the last, the rid seeded from the wall clock at session
creation. Replies usually arrive in order but this is not enforced
client-side; elements are delivered in the order replies are processed.

Whenever the in-flight request count drops to zero after a reply, the
session immediately issues an empty-body poll so the long-polling
server always has an open channel to push on. SetKeepalive(false)
disables this, leaving polling to the caller via Poll.

Stop posts one final terminate body and stops the session without
cancelling in-flight requests; their completions are discarded. A
second Stop returns bosherr.ErrAlreadyStopped.
*/
package session
