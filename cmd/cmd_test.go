package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alist-org/biliqr/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPassport(t *testing.T) *httptest.Server {
	t.Helper()
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/x/passport-login/web/qrcode/generate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":0,"message":"0","ttl":1,"data":{"url":"https://account.bilibili.com/qr?qrcode_key=k1","qrcode_key":"k1"}}`))
	})
	mux.HandleFunc("/x/passport-login/web/qrcode/poll", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("qrcode_key") != "k1" || polls.Add(1) < 2 {
			_, _ = w.Write([]byte(`{"code":0,"data":{"code":86101}}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "bili_jct", Value: "c1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "DedeUserID", Value: "42", Path: "/"})
		_, _ = w.Write([]byte(`{"code":0,"data":{"code":0,"timestamp":1700000000}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BILIQR_SEED_BUVID", "false")
	var out, stderr bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	// Execute is the only place that reports errors
	assert.Empty(t, stderr.String())
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	srv := newPassport(t)
	out, err := run(t, "generate", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "url: https://account.bilibili.com/qr?qrcode_key=k1\nkey: k1\n", out)
}

func TestPollCmd(t *testing.T) {
	srv := newPassport(t)
	out, err := run(t, "poll", "--base-url", srv.URL, "--key", "other")
	require.NoError(t, err)
	assert.Equal(t, "Unscanned\n", out)
}

func TestLoginCmd(t *testing.T) {
	srv := newPassport(t)
	out, err := run(t, "login", "--base-url", srv.URL, "--interval", "5ms", "--wait", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, "https://account.bilibili.com/qr?qrcode_key=k1")
	assert.Contains(t, out, "login succeeded at 1700000000\ncsrf: c1\ncookies: [DedeUserID bili_jct]\n")
}

func TestPollCmdErrorNotPrinted(t *testing.T) {
	srv := newPassport(t)
	out, err := run(t, "poll", "--base-url", srv.URL, "--key", "")
	assert.ErrorIs(t, err, errs.EmptyQrcodeKey)
	assert.Empty(t, out)
}
