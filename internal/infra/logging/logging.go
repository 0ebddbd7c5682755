// Where: internal/infra/logging/logging.go
// What: zap logger construction with an optional rotating JSON file.
// Why: Keep diagnostics on stderr and out of the user-facing console output.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/poruru/layergen/internal/meta"
)

// Options configures the diagnostic logger.
type Options struct {
	Verbose    bool
	Console    io.Writer
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

// New builds the logger. The console core logs at debug when verbose and at
// warn otherwise; the file core, when File is set, uses Level (default info).
// The returned close function flushes and releases the file.
func New(opts Options) (*zap.Logger, func()) {
	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	consoleLevel := zapcore.WarnLevel
	if opts.Verbose {
		consoleLevel = zapcore.DebugLevel
	}
	consoleCfg := encoderCfg
	consoleCfg.TimeKey = ""
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), consoleLevel),
	}

	var file *lumberjack.Logger
	if path := strings.TrimSpace(opts.File); path != "" {
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    max(1, opts.MaxSizeMB),
			MaxBackups: max(0, opts.MaxBackups),
		}
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(file), parseLevel(opts.Level)))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(meta.AppName)
	closeFn := func() {
		_ = logger.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, closeFn
}

func parseLevel(value string) zapcore.Level {
	lvl := zapcore.InfoLevel
	if strings.TrimSpace(value) == "" {
		return lvl
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(value))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
