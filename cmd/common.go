package cmd

import (
	"github.com/alist-org/biliqr/cmd/flags"
	"github.com/alist-org/biliqr/internal/bootstrap"
	"github.com/alist-org/biliqr/internal/conf"
	"github.com/alist-org/biliqr/internal/session"
	"github.com/alist-org/biliqr/pkg/utils"
)

// Init loads the config, applies command line overrides and starts logging.
func Init() *conf.Config {
	cfg, err := conf.Load()
	if err != nil {
		utils.Log.Fatalf("failed load config: %+v", err)
	}
	if flags.BaseURL != "" {
		cfg.BaseURL = flags.BaseURL
	}
	if flags.Timeout > 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.Interval > 0 {
		cfg.PollInterval = flags.Interval
	}
	if flags.Wait > 0 {
		cfg.WaitTimeout = flags.Wait
	}
	bootstrap.InitLogrus(cfg, flags.Debug)
	return cfg
}

func newSession(cfg *conf.Config) *session.Session {
	s, err := session.New(cfg)
	if err != nil {
		utils.Log.Fatalf("failed create session: %+v", err)
	}
	return s
}
