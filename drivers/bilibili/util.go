package bilibili

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/alist-org/biliqr/internal/errs"
	"github.com/alist-org/biliqr/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

func request(ctx context.Context, client *resty.Client) *resty.Request {
	return client.R().
		SetHeader("Accept", "application/json").
		SetContext(ctx)
}

// endpoint joins path onto the client's base url, falling back to the passport host.
func endpoint(client *resty.Client, path string) string {
	base := PassportURL
	if client.BaseURL != "" {
		base = strings.TrimRight(client.BaseURL, "/")
	}
	return base + path
}

func checkTransport(op string, res *resty.Response, err error) error {
	if err != nil {
		return &errs.TransportError{Op: op, Err: errors.WithStack(err)}
	}
	if !res.IsSuccess() {
		return &errs.TransportError{Op: op, Err: errors.Errorf("unexpected http status %d", res.StatusCode())}
	}
	return nil
}

func findCookie(cookies []*http.Cookie, name string) (string, bool) {
	for _, c := range cookies {
		if c.Name == name && c.Value != "" {
			return c.Value, true
		}
	}
	return "", false
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || string(raw) == "null"
}

// parseUint accepts only a bare non-negative JSON integer.
func parseUint(field string, raw json.RawMessage) (uint64, error) {
	if isAbsent(raw) {
		return 0, &errs.ProtocolViolation{Field: field, Reason: "missing"}
	}
	n, err := strconv.ParseUint(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		return 0, &errs.ProtocolViolation{Field: field, Reason: "not an unsigned integer: " + string(raw)}
	}
	return n, nil
}

// optString returns raw as a string, or "" when it is absent or not a JSON string.
func optString(raw json.RawMessage) string {
	var s string
	if isAbsent(raw) || utils.JsonStrict.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
