package op

import (
	"context"
	"time"

	"github.com/alist-org/biliqr/drivers/bilibili"
	"github.com/alist-org/biliqr/internal/errs"
	"github.com/alist-org/biliqr/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type StatusHandler func(status *bilibili.ScanStatus)

// WaitLogin polls qrcodeKey immediately and then once per interval until the
// state is terminal. The first error ends the wait; nothing is retried.
// An expired qrcode is returned together with errs.QrcodeExpired.
func WaitLogin(ctx context.Context, client *resty.Client, qrcodeKey string, interval time.Duration, onStatus StatusHandler) (*bilibili.ScanStatus, error) {
	if interval <= 0 {
		return nil, errors.Errorf("invalid poll interval %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := bilibili.ScanState(-1)
	for {
		status, err := bilibili.Poll(ctx, client, qrcodeKey)
		if err != nil {
			return nil, err
		}
		if status.State != last {
			utils.Log.Debugf("[login] qrcode %s: %s -> %s", qrcodeKey, last, status.State)
			last = status.State
		}
		if onStatus != nil {
			onStatus(status)
		}
		switch status.State {
		case bilibili.StateSuccess:
			return status, nil
		case bilibili.StateExpired:
			return status, errs.QrcodeExpired
		}
		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-ticker.C:
		}
	}
}

// Login runs the whole flow: generate a qrcode, hand it to onQrcode for
// display, then wait for the user to scan and confirm it.
func Login(ctx context.Context, client *resty.Client, interval time.Duration, onQrcode func(qr *bilibili.QrGenResponse), onStatus StatusHandler) (*bilibili.ScanStatus, error) {
	qr, err := bilibili.Generate(ctx, client)
	if err != nil {
		return nil, err
	}
	if onQrcode != nil {
		onQrcode(qr)
	}
	return WaitLogin(ctx, client, qr.QrcodeKey, interval, onStatus)
}
