package bootstrap

import (
	"io"
	"os"

	"github.com/alist-org/biliqr/internal/conf"
	"github.com/alist-org/biliqr/pkg/utils"
	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

func setLog(l *log.Logger, debug bool) {
	l.SetFormatter(&log.TextFormatter{
		ForceColors:               true,
		EnvironmentOverrideColors: true,
		TimestampFormat:           "2006-01-02 15:04:05",
		FullTimestamp:             true,
	})
	l.SetReportCaller(false)
	if debug {
		l.SetLevel(log.DebugLevel)
		l.SetReportCaller(true)
	} else {
		l.SetLevel(log.InfoLevel)
	}
}

func InitLogrus(cfg *conf.Config, debug bool) {
	setLog(utils.Log, debug)
	logConfig := cfg.Log
	if logConfig.Enable {
		var w io.Writer = &lumberjack.Logger{
			Filename:   logConfig.Name,
			MaxSize:    logConfig.MaxSize,
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAge,
			Compress:   logConfig.Compress,
		}
		utils.Log.SetOutput(io.MultiWriter(os.Stdout, w))
	} else {
		utils.Log.SetOutput(os.Stdout)
	}
	utils.Log.Debugf("init logrus...")
}
