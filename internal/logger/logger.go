package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type rqIDKey struct{}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the service logger. Output always goes to stdout; when file is
// set it is also written to a size-rotated file. The returned closer flushes
// and closes that file.
func New(level, file string) (*logrus.Logger, io.Closer, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	if file == "" {
		log.SetOutput(os.Stdout)
		return log, nopCloser{}, nil
	}

	rotating := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotating))
	return log, rotating, nil
}

// WithRequestID stores the request id on ctx.
func WithRequestID(ctx context.Context, rqID string) context.Context {
	return context.WithValue(ctx, rqIDKey{}, rqID)
}

// RequestIDFromCtx returns the request id stored on ctx, or "".
func RequestIDFromCtx(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey{}).(string)
	if !ok {
		return ""
	}
	return rqID
}

// FromCtx returns an entry carrying the request id of ctx, if any.
func FromCtx(ctx context.Context, log logrus.FieldLogger) logrus.FieldLogger {
	if rqID := RequestIDFromCtx(ctx); rqID != "" {
		return log.WithField("rqID", rqID)
	}
	return log
}
