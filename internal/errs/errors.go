package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	EmptyQrcodeKey = errors.New("qrcode key is empty")
	QrcodeExpired  = errors.New("qrcode expired")
)

// TransportError is returned when the request never produced a usable
// response: network, DNS and TLS failures, or a non-2xx HTTP status.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not have the expected JSON shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError carries a non-zero envelope code reported by the server.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bilibili: %s (%d)", e.Message, e.Code)
}

// ProtocolViolation reports a poll response that is well-formed JSON but
// breaks the login protocol: a missing field, an unknown status code, or a
// successful login without the csrf cookie.
type ProtocolViolation struct {
	Field  string
	Reason string
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("protocol violation on %s: %s", e.Field, e.Reason)
}

func IsProtocolViolation(err error) bool {
	var pv *ProtocolViolation
	return errors.As(err, &pv)
}
