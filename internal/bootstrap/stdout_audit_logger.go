package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records lifecycle events that should survive in the ops trail
// even when regular request logging is filtered out.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
