package logging

import (
	"context"

	"go.uber.org/zap"

	"github.com/visheshsahu1513/Smart-Learning/internal/ctxdata"
)

type loggerKey struct{}

const (
	commandID   = "command_id"
	commandName = "command"
)

var loggerKeyInstance = loggerKey{}

// Logger wraps zap so every line carries the id and name of the command
// it was emitted from, when the context has them.
type Logger struct {
	l *zap.Logger
}

func New(zapLogger *zap.Logger) *Logger {
	return &Logger{zapLogger}
}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKeyInstance, logger)
}

func GetFromContext(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(loggerKeyInstance).(*Logger)
	return logger, ok
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Debug(msg, fieldsWithCommand(ctx, fields)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Info(msg, fieldsWithCommand(ctx, fields)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Warn(msg, fieldsWithCommand(ctx, fields)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Error(msg, fieldsWithCommand(ctx, fields)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...zap.Field) {
	l.l.Fatal(msg, fieldsWithCommand(ctx, fields)...)
}

func fieldsWithCommand(ctx context.Context, fields []zap.Field) []zap.Field {
	if id, ok := ctxdata.GetCommandID(ctx); ok {
		fields = append(fields, zap.String(commandID, id))
	}
	if name, ok := ctxdata.GetCommandName(ctx); ok {
		fields = append(fields, zap.String(commandName, name))
	}
	return fields
}
