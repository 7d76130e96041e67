package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "quickeats/internal/delivery/context"
	"quickeats/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM output through slog. Statements issued while
// serving a request are logged with that request's logger so they carry
// its request_id.
type queryLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

func newQueryLogger(fallback *slog.Logger, debug bool) *queryLogger {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	return &queryLogger{fallback: fallback, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}
	logger := l.loggerFor(ctx)
	if logger == nil {
		return
	}

	logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements and, in debug, every statement.
// A missing row is an expected lookup outcome and is never logged as a failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	logger := l.loggerFor(ctx)
	if logger == nil {
		return
	}

	elapsed := time.Since(begin)
	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level, msg, extra = slog.LevelError, "query failed", slog.String("error", err.Error())
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		level, msg, extra = slog.LevelWarn, "slow query", slog.Duration("threshold", l.slow)
	case l.level >= gormlogger.Info:
		level, msg = slog.LevelDebug, "query"
	default:
		return
	}

	stmt, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", stmt),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}
	logger.LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.fallback
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.fallback)
}
