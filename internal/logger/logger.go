// Package logger holds the process-wide zap logger. Diagnostics always go
// to stderr so that stdout carries nothing but generated source.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for repeated -v flags.
const (
	VerbosityUser  = 0 // errors and warnings only
	VerbosityInfo  = 1 // -v: + what is being generated and where
	VerbosityDebug = 2 // -vv: + resolved configuration
)

// Logger is a no-op until Initialize is called.
var Logger = zap.NewNop().Sugar()

// Initialize installs a console logger on stderr at the given verbosity.
func Initialize(verbosity int) {
	Logger = New(zapcore.Lock(os.Stderr), verbosity)
}

// New builds a console logger writing to w.
func New(w zapcore.WriteSyncer, verbosity int) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), w, VerbosityToLevel(verbosity))
	return zap.New(core).Sugar().Named("trigtab")
}

// VerbosityToLevel maps the -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Error logs err together with any user hints attached to it.
func Error(log *zap.SugaredLogger, err error) {
	if hints := errors.FlattenHints(err); hints != "" {
		log.Errorw(err.Error(), "hint", hints)
		return
	}
	log.Error(err.Error())
}
