package session

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/alist-org/biliqr/drivers/base"
	"github.com/alist-org/biliqr/internal/conf"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// Session is the caller-owned state of one login flow: an http client whose
// cookie jar accumulates whatever the passport responses set. Only the
// transport writes to the jar.
type Session struct {
	client  *resty.Client
	jar     *cookiejar.Jar
	baseURL *url.URL
}

func New(cfg *conf.Config) (*Session, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", cfg.BaseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid base url %q", cfg.BaseURL)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	client := base.NewRestyClient().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetCookieJar(jar)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("user-agent", cfg.UserAgent)
	}
	if cfg.SeedBuvid {
		// the web client always carries a device id before logging in
		jar.SetCookies(u, []*http.Cookie{{
			Name:  "buvid3",
			Value: strings.ToUpper(uuid.NewString()) + "infoc",
			Path:  "/",
		}})
	}
	return &Session{client: client, jar: jar, baseURL: u}, nil
}

func (s *Session) Client() *resty.Client {
	return s.client
}

// Cookies returns a snapshot of the cookies the jar would send to the passport host.
func (s *Session) Cookies() map[string]string {
	res := make(map[string]string)
	for _, c := range s.jar.Cookies(s.baseURL) {
		res[c.Name] = c.Value
	}
	return res
}

func (s *Session) Cookie(name string) (string, bool) {
	v, ok := s.Cookies()[name]
	return v, ok
}
