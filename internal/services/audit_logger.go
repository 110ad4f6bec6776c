package services

import (
	"context"
	"log/slog"
	"time"
)

type contextKey string

const (
	// CorrelationIDKey is the context key the request middleware stores the trace id under
	CorrelationIDKey contextKey = "correlation_id"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

// WithCorrelationID returns a context carrying id for audit records
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

func (al *AuditLogger) LogLogin(ctx context.Context, userName string, success bool) {
	level := slog.LevelInfo
	message := "login succeeded"
	if !success {
		level = slog.LevelWarn
		message = "login failed"
	}

	al.logger.LogAttrs(ctx, level, message,
		slog.String("event_type", "login"),
		slog.String("user_name", userName),
		slog.Bool("success", success),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransfer(ctx context.Context, fromUserName, toUserName string, amount float64, accepted bool) {
	level := slog.LevelInfo
	message := "transfer completed"
	if !accepted {
		level = slog.LevelWarn
		message = "transfer rejected"
	}

	al.logger.LogAttrs(ctx, level, message,
		slog.String("event_type", "transfer"),
		slog.String("user_name", fromUserName),
		slog.String("to_user_name", toUserName),
		slog.Float64("amount", amount),
		slog.Bool("accepted", accepted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLoan(ctx context.Context, userName string, amount float64, approved bool) {
	level := slog.LevelInfo
	message := "loan approved"
	if !approved {
		level = slog.LevelWarn
		message = "loan rejected"
	}

	al.logger.LogAttrs(ctx, level, message,
		slog.String("event_type", "loan"),
		slog.String("user_name", userName),
		slog.Float64("amount", amount),
		slog.Bool("approved", approved),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountClosed(ctx context.Context, userName string, success bool) {
	level := slog.LevelInfo
	message := "account closed"
	if !success {
		level = slog.LevelWarn
		message = "account close rejected"
	}

	al.logger.LogAttrs(ctx, level, message,
		slog.String("event_type", "account_close"),
		slog.String("user_name", userName),
		slog.Bool("success", success),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSortToggled(ctx context.Context, userName string, sorted bool) {
	al.logger.DebugContext(ctx, "movement sort toggled",
		slog.String("event_type", "sort_toggled"),
		slog.String("user_name", userName),
		slog.Bool("sorted", sorted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLedgerFailure(ctx context.Context, operation string, err error) {
	al.logger.ErrorContext(ctx, "ledger operation failed",
		slog.String("event_type", "ledger_failure"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
