// Package logging builds the zap logger used by the command: human readable
// lines on the console, and optionally JSON lines in a rotated log file.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to console at the given level ("debug", "info",
// "warn" or "error"). When file is set the same entries are also appended to
// it as JSON, rotated at 32 MB.
func New(level, file string, console io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	if lvl > zapcore.DebugLevel {
		// plain progress output, the way the tool has always printed it
		consoleCfg.TimeKey = ""
		consoleCfg.CallerKey = ""
		consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), lvl),
	}

	if file != "" {
		w := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    32, // MB
			MaxBackups: 3,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), lvl))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
