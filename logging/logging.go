package logging

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
	"strings"
)

// New returns a logfmt logger writing to w with timestamp and caller,
// dropping entries below lvl (debug, info, warn or error; anything else means info).
func New(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow(lvl))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func allow(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
