package services

import (
	"context"
	"log/slog"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey holds the request trace ID in a request context.
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns ctx carrying the given trace ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

type LedgerLogger struct {
	logger *slog.Logger
}

func NewLedgerLogger(logger *slog.Logger) LedgerLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerLogger{
		logger: logger,
	}
}

func (l *LedgerLogger) LogBalanceReportGenerated(ctx context.Context, churchID uuid.UUID, year int, movements int, durationMs int64) {
	l.logger.InfoContext(ctx, "balance report generated",
		slog.String("event_type", "balance_report_generated"),
		slog.String("church_id", churchID.String()),
		slog.Int("year", year),
		slog.Int("window_movements", movements),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogMovementRecorded(ctx context.Context, movement *models.Movement, actor models.Actor) {
	l.logger.InfoContext(ctx, "movement recorded",
		slog.String("event_type", "movement_recorded"),
		slog.String("church_id", movement.ChurchID.String()),
		slog.String("movement_id", movement.ID.String()),
		slog.String("kind", string(movement.Kind)),
		slog.String("currency", string(movement.Currency)),
		slog.String("amount", movement.Amount.String()),
		slog.Time("occurred_at", movement.OccurredAt),
		slog.String("user_id", actor.UserID),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogExchangeRecorded(ctx context.Context, groupID uuid.UUID, from, to models.Currency, amount, rate string, actor models.Actor) {
	l.logger.InfoContext(ctx, "exchange recorded",
		slog.String("event_type", "exchange_recorded"),
		slog.String("exchange_group_id", groupID.String()),
		slog.String("from_currency", string(from)),
		slog.String("to_currency", string(to)),
		slog.String("amount", amount),
		slog.String("rate", rate),
		slog.String("user_id", actor.UserID),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogMovementCancelled(ctx context.Context, churchID uuid.UUID, movementIDs []uuid.UUID, actor models.Actor, reason string) {
	ids := make([]string, len(movementIDs))
	for i, id := range movementIDs {
		ids[i] = id.String()
	}
	l.logger.InfoContext(ctx, "movement cancelled",
		slog.String("event_type", "movement_cancelled"),
		slog.String("church_id", churchID.String()),
		slog.Any("movement_ids", ids),
		slog.String("reason", reason),
		slog.String("user_id", actor.UserID),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogMembershipChanged(ctx context.Context, churchID uuid.UUID, userID, oldRole, newRole string, actor models.Actor) {
	l.logger.InfoContext(ctx, "membership changed",
		slog.String("event_type", "membership_changed"),
		slog.String("church_id", churchID.String()),
		slog.String("member_user_id", userID),
		slog.String("old_role", oldRole),
		slog.String("new_role", newRole),
		slog.String("user_id", actor.UserID),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogInvitationAccepted(ctx context.Context, churchID, invitationID uuid.UUID, actor models.Actor) {
	l.logger.InfoContext(ctx, "invitation accepted",
		slog.String("event_type", "invitation_accepted"),
		slog.String("church_id", churchID.String()),
		slog.String("invitation_id", invitationID.String()),
		slog.String("user_id", actor.UserID),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogAuthorizationFailure(ctx context.Context, operation string, churchID uuid.UUID, userID string) {
	l.logger.WarnContext(ctx, "authorization failure",
		slog.String("event_type", "authorization_failure"),
		slog.String("operation", operation),
		slog.String("church_id", churchID.String()),
		slog.String("user_id", userID),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *LedgerLogger) LogJobFailed(ctx context.Context, job string, errorMsg string) {
	l.logger.ErrorContext(ctx, "scheduled job failed",
		slog.String("event_type", "job_failed"),
		slog.String("job", job),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
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
