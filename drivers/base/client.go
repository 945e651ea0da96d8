package base

import (
	"time"

	"github.com/alist-org/biliqr/pkg/utils"
	"github.com/go-resty/resty/v2"
)

var (
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	Referer        = "https://www.bilibili.com/"
	DefaultTimeout = time.Second * 10
)

// NewRestyClient returns a client without retries; failed requests surface to the caller as-is.
func NewRestyClient() *resty.Client {
	client := resty.New().
		SetHeader("user-agent", UserAgent).
		SetHeader("referer", Referer).
		SetTimeout(DefaultTimeout).
		SetJSONMarshaler(utils.Json.Marshal).
		SetJSONUnmarshaler(utils.Json.Unmarshal)
	return client
}
