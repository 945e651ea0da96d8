package bilibili

import (
	"context"
	"fmt"

	"github.com/alist-org/biliqr/internal/errs"
	"github.com/alist-org/biliqr/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const (
	PassportURL  = "https://passport.bilibili.com"
	generatePath = "/x/passport-login/web/qrcode/generate"
	pollPath     = "/x/passport-login/web/qrcode/poll"

	CSRFCookie = "bili_jct"

	CodeSuccess     = 0
	CodeExpired     = 86038
	CodeUnconfirmed = 86090
	CodeUnscanned   = 86101
)

// Generate requests a new login qrcode. The returned URL is what the qrcode
// encodes; QrcodeKey identifies the attempt for Poll.
func Generate(ctx context.Context, client *resty.Client) (*QrGenResponse, error) {
	const op = "generate qrcode"
	res, err := request(ctx, client).Get(endpoint(client, generatePath))
	if err := checkTransport(op, res, err); err != nil {
		return nil, err
	}
	var resp qrGenResp
	if err := utils.JsonStrict.Unmarshal(res.Body(), &resp); err != nil {
		return nil, &errs.DecodeError{Op: op, Err: errors.WithStack(err)}
	}
	switch {
	case resp.Code == nil:
		return nil, &errs.DecodeError{Op: op, Err: errors.New("missing field code")}
	case resp.Message == nil:
		return nil, &errs.DecodeError{Op: op, Err: errors.New("missing field message")}
	case resp.TTL == nil:
		return nil, &errs.DecodeError{Op: op, Err: errors.New("missing field ttl")}
	}
	if *resp.Code != 0 {
		return nil, &errs.APIError{Code: *resp.Code, Message: *resp.Message}
	}
	switch {
	case resp.Data == nil:
		return nil, &errs.DecodeError{Op: op, Err: errors.New("missing field data")}
	case resp.Data.URL == nil:
		return nil, &errs.DecodeError{Op: op, Err: errors.New("missing field data.url")}
	case resp.Data.QrcodeKey == nil:
		return nil, &errs.DecodeError{Op: op, Err: errors.New("missing field data.qrcode_key")}
	}
	utils.Log.Debugf("[bilibili] qrcode generated, key: %s", *resp.Data.QrcodeKey)
	return &QrGenResponse{
		URL:       *resp.Data.URL,
		QrcodeKey: *resp.Data.QrcodeKey,
	}, nil
}

// Poll checks the scan status of qrcodeKey once. It never loops or sleeps;
// callers poll again at their own cadence until the state is terminal.
// Cookies set by the response land in the client's jar through the transport.
func Poll(ctx context.Context, client *resty.Client, qrcodeKey string) (*ScanStatus, error) {
	const op = "poll qrcode"
	if qrcodeKey == "" {
		return nil, errs.EmptyQrcodeKey
	}
	res, err := request(ctx, client).
		SetQueryParam("qrcode_key", qrcodeKey).
		Get(endpoint(client, pollPath))
	if err := checkTransport(op, res, err); err != nil {
		return nil, err
	}
	csrf, hasCSRF := findCookie(res.Cookies(), CSRFCookie)

	var resp pollResp
	if err := utils.JsonStrict.Unmarshal(res.Body(), &resp); err != nil {
		return nil, &errs.DecodeError{Op: op, Err: errors.WithStack(err)}
	}
	if isAbsent(resp.Data) {
		return nil, &errs.ProtocolViolation{Field: "data.code", Reason: "data object missing"}
	}
	var data pollData
	if err := utils.JsonStrict.Unmarshal(resp.Data, &data); err != nil {
		return nil, &errs.ProtocolViolation{Field: "data", Reason: err.Error()}
	}
	status, err := toStatus(&data, csrf, hasCSRF)
	if err != nil {
		return nil, err
	}
	utils.Log.Debugf("[bilibili] qrcode %s polled: %s", qrcodeKey, status.State)
	return status, nil
}

func toStatus(data *pollData, csrf string, hasCSRF bool) (*ScanStatus, error) {
	code, err := parseUint("data.code", data.Code)
	if err != nil {
		return nil, err
	}
	switch code {
	case CodeSuccess:
		ts, err := parseUint("data.timestamp", data.Timestamp)
		if err != nil {
			return nil, err
		}
		if !hasCSRF {
			return nil, &errs.ProtocolViolation{Field: CSRFCookie, Reason: "cookie missing on successful login"}
		}
		return &ScanStatus{
			State:        StateSuccess,
			Timestamp:    ts,
			CSRF:         csrf,
			RefreshToken: optString(data.RefreshToken),
			URL:          optString(data.URL),
		}, nil
	case CodeExpired:
		return &ScanStatus{State: StateExpired}, nil
	case CodeUnconfirmed:
		return &ScanStatus{State: StateUnconfirmed}, nil
	case CodeUnscanned:
		return &ScanStatus{State: StateUnscanned}, nil
	default:
		reason := fmt.Sprintf("unknown status code %d", code)
		if msg := optString(data.Message); msg != "" {
			reason += ": " + msg
		}
		return nil, &errs.ProtocolViolation{Field: "data.code", Reason: reason}
	}
}
