package bosherr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTransportError(t *testing.T) {
	underlying := errors.New("connection refused")
	for _, tc := range []struct {
		err  *TransportError
		want string
	}{
		{
			err:  &TransportError{RID: 42, Err: underlying},
			want: "transport failure for request 42: connection refused",
		},
		{
			err:  &TransportError{RID: 43, Status: 503},
			want: "transport failure for request 43: HTTP status 503",
		},
	} {
		assert.EqualError(t, tc.err, tc.want)
	}
	assert.Equal(t, underlying, (&TransportError{Err: underlying}).Unwrap())
	assert.Nil(t, (&TransportError{Status: 500}).Unwrap())
}

func TestSessionFailed(t *testing.T) {
	cause := errors.New("missing <body> element")
	err := &SessionFailed{Err: cause}
	assert.EqualError(t, err, "session failed: missing <body> element")
	assert.True(t, errors.Is(err, cause))
}

func TestStartupError(t *testing.T) {
	assert.EqualError(t, &StartupError{Reason: "nil handler"}, "session startup failed: nil handler")
}

func TestCondition(t *testing.T) {
	assert.True(t, CondItemNotFound.Known())
	assert.True(t, CondSeeOtherURI.Known())
	assert.False(t, Condition("no-such-condition").Known())
	assert.Equal(t, "policy-violation", CondPolicyViolation.String())
	assert.EqualError(t, CondSystemShutdown, "session terminated by server: system-shutdown")
}
