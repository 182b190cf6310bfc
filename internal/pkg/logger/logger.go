// Package logger provides the Logger port implementations: a zap-backed
// production logger and a no-op logger for tests.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger routes structured log output through zap.
type ZapLogger struct {
	log *zap.SugaredLogger
}

// NewZap creates a production logger. Verbose enables debug output.
func NewZap(verbose bool) *ZapLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		log = zap.NewNop()
	}
	return &ZapLogger{log: log.Sugar()}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debugw(msg, flatten(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Infow(msg, flatten(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warnw(msg, flatten(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := flatten(fields)
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.log.Errorw(msg, args...)
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

// NopLogger discards everything. Useful in tests.
type NopLogger struct{}

// NewNop creates a NopLogger.
func NewNop() *NopLogger {
	return &NopLogger{}
}

func (*NopLogger) Debug(string, map[string]interface{})        {}
func (*NopLogger) Info(string, map[string]interface{})         {}
func (*NopLogger) Warn(string, map[string]interface{})         {}
func (*NopLogger) Error(string, error, map[string]interface{}) {}
