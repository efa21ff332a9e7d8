package logging

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"

	// LogOff disables logging.
	LogOff LogLevel = "off"
)

var ErrUnknownLevel = errors.New("unknown log level")

func (l LogLevel) zapLevel() (zapcore.Level, error) {
	switch LogLevel(strings.ToLower(string(l))) {
	case LogDebug:
		return zap.DebugLevel, nil
	case LogInfo, "":
		return zap.InfoLevel, nil
	case LogWarn:
		return zap.WarnLevel, nil
	case LogError:
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, errors.Wrapf(ErrUnknownLevel, "%q", l)
	}
}

// New returns a console logger writing to stderr at the given level.
// LogOff returns a no-op logger.
func New(level LogLevel) (*zap.Logger, error) {
	if LogLevel(strings.ToLower(string(level))) == LogOff {
		return zap.NewNop(), nil
	}
	lvl, err := level.zapLevel()
	if err != nil {
		return nil, err
	}
	return console(os.Stderr, lvl), nil
}

// NewTest returns a debug-level console logger on stdout.
func NewTest() *zap.Logger {
	return console(os.Stdout, zap.DebugLevel)
}

func console(out *os.File, level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(out),
		level,
	)
	return zap.New(consoleCore)
}
