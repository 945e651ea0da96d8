package bilibili

import (
	"encoding/json"
	"fmt"
)

// QrGenResponse is the payload of the generate call.
type QrGenResponse struct {
	URL       string `json:"url"`
	QrcodeKey string `json:"qrcode_key"`
}

// qrGenResp is the generate envelope. Every field is required; pointers
// tell absence apart from zero values.
type qrGenResp struct {
	Code    *int       `json:"code"`
	Message *string    `json:"message"`
	TTL     *int       `json:"ttl"`
	Data    *qrGenData `json:"data"`
}

type qrGenData struct {
	URL       *string `json:"url"`
	QrcodeKey *string `json:"qrcode_key"`
}

// Every field is kept raw: code and timestamp are parsed strictly, the
// rest are optional extras and must never fail a poll.
type pollData struct {
	Code         json.RawMessage `json:"code"`
	Message      json.RawMessage `json:"message"`
	Timestamp    json.RawMessage `json:"timestamp"`
	URL          json.RawMessage `json:"url"`
	RefreshToken json.RawMessage `json:"refresh_token"`
}

type pollResp struct {
	Data json.RawMessage `json:"data"`
}

type ScanState int

const (
	StateUnscanned ScanState = iota
	StateUnconfirmed
	StateExpired
	StateSuccess
)

func (s ScanState) String() string {
	switch s {
	case StateUnscanned:
		return "Unscanned"
	case StateUnconfirmed:
		return "Unconfirmed"
	case StateExpired:
		return "Expired"
	case StateSuccess:
		return "Success"
	default:
		return "Unknown"
	}
}

// Terminal reports whether polling the same key again is pointless.
func (s ScanState) Terminal() bool {
	return s == StateSuccess || s == StateExpired
}

// ScanStatus is the outcome of a single poll. Timestamp, CSRF, RefreshToken
// and URL are only set when State is StateSuccess.
type ScanStatus struct {
	State        ScanState
	Timestamp    uint64
	CSRF         string
	RefreshToken string
	URL          string
}

func (s *ScanStatus) String() string {
	if s.State == StateSuccess {
		return fmt.Sprintf("Success{timestamp: %d}", s.Timestamp)
	}
	return s.State.String()
}
