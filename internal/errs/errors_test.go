package errs

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("login: %w", &TransportError{Op: "generate qrcode", Err: cause})

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "generate qrcode", te.Op)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestIsProtocolViolation(t *testing.T) {
	pv := &ProtocolViolation{Field: "bili_jct", Reason: "cookie missing on successful login"}
	assert.True(t, IsProtocolViolation(pv))
	assert.True(t, IsProtocolViolation(errors.WithMessage(pv, "poll")))
	assert.False(t, IsProtocolViolation(&DecodeError{Op: "poll", Err: errors.New("eof")}))
	assert.False(t, IsProtocolViolation(nil))
	assert.Equal(t, "protocol violation on bili_jct: cookie missing on successful login", pv.Error())
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Code: -412, Message: "请求被拦截"}
	assert.Equal(t, "bilibili: 请求被拦截 (-412)", err.Error())
}
