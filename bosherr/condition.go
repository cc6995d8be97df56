package bosherr

import "fmt"

// Condition is a terminal binding condition reported by the connection
// manager on a <body type="terminate" condition="..."/> reply
// (XEP-0124, s17).
type Condition string

const (
	// CondBadRequest indicates the format of an HTTP header or binding
	// element was unacceptable.
	CondBadRequest Condition = "bad-request"
	// CondHostGone indicates the target domain is no longer serviced by
	// the connection manager.
	CondHostGone Condition = "host-gone"
	// CondHostUnknown indicates the target domain is unknown to the
	// connection manager.
	CondHostUnknown Condition = "host-unknown"
	// CondImproperAddressing indicates a stanza lacked a valid "to"
	// address.
	CondImproperAddressing Condition = "improper-addressing"
	// CondInternalServerError indicates an unspecified connection
	// manager error.
	CondInternalServerError Condition = "internal-server-error"
	// CondItemNotFound indicates the sid or rid was unknown, typically
	// because the session timed out.
	CondItemNotFound Condition = "item-not-found"
	// CondOtherRequest indicates another request broke the connection
	// rules of the session.
	CondOtherRequest Condition = "other-request"
	// CondPolicyViolation indicates the client violated local service
	// policy.
	CondPolicyViolation Condition = "policy-violation"
	// CondRemoteConnectionFailed indicates the connection manager could
	// not connect to the server.
	CondRemoteConnectionFailed Condition = "remote-connection-failed"
	// CondRemoteStreamError indicates the server returned a stream
	// error; the stream error condition travels inside the body.
	CondRemoteStreamError Condition = "remote-stream-error"
	// CondSeeOtherURI asks the client to reconnect to another URI.
	CondSeeOtherURI Condition = "see-other-uri"
	// CondSystemShutdown indicates the connection manager is being
	// shut down.
	CondSystemShutdown Condition = "system-shutdown"
	// CondUndefinedCondition is the catch-all terminal condition.
	CondUndefinedCondition Condition = "undefined-condition"
)

var conditions = map[Condition]struct{}{
	CondBadRequest:             {},
	CondHostGone:               {},
	CondHostUnknown:            {},
	CondImproperAddressing:     {},
	CondInternalServerError:    {},
	CondItemNotFound:           {},
	CondOtherRequest:           {},
	CondPolicyViolation:        {},
	CondRemoteConnectionFailed: {},
	CondRemoteStreamError:      {},
	CondSeeOtherURI:            {},
	CondSystemShutdown:         {},
	CondUndefinedCondition:     {},
}

// Known reports whether c is one of the terminal binding conditions
// defined by XEP-0124.
func (c Condition) Known() bool {
	_, ok := conditions[c]
	return ok
}

func (c Condition) String() string { return string(c) }

func (c Condition) Error() string {
	return fmt.Sprintf("session terminated by server: %s", string(c))
}
