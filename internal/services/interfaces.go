package services

import (
	"context"
	"io"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
)

// BalanceServiceInterface builds the dashboard balance report of a church
type BalanceServiceInterface interface {
	GetBalanceReport(ctx context.Context, churchID uuid.UUID, year int) (*models.BalanceReport, error)
	RefreshBalanceGauges(ctx context.Context) error
}

// MovementServiceInterface defines ledger mutations and listings
type MovementServiceInterface interface {
	Record(ctx context.Context, churchID uuid.UUID, actor models.Actor, in models.MovementInput) (*models.Movement, error)
	RecordExchange(ctx context.Context, churchID uuid.UUID, actor models.Actor, in models.ExchangeInput) ([]models.Movement, error)
	List(ctx context.Context, filters models.MovementFilters) ([]models.Movement, int64, error)
	Cancel(ctx context.Context, churchID, movementID uuid.UUID, actor models.Actor, reason string) ([]models.Movement, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	Record(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filters models.AuditLogFilters) ([]*models.EnrichedAuditLog, int64, error)
	ExportCSV(ctx context.Context, filters models.AuditLogFilters, w io.Writer) (int, error)
	PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error)
}

// MembershipServiceInterface manages who can access a church and with which role
type MembershipServiceInterface interface {
	GetMembership(ctx context.Context, churchID uuid.UUID, userID string) (*models.Membership, error)
	List(ctx context.Context, churchID uuid.UUID) ([]models.Membership, error)
	ChangeRole(ctx context.Context, churchID uuid.UUID, userID, role string, actor models.Actor) (*models.Membership, error)
	Remove(ctx context.Context, churchID uuid.UUID, userID string, actor models.Actor) error
	Invite(ctx context.Context, churchID uuid.UUID, email, role string, actor models.Actor) (*models.CreatedInvitation, error)
	AcceptInvitation(ctx context.Context, token string, actor models.Actor) (*models.Membership, error)
	ListPendingInvitations(ctx context.Context, churchID uuid.UUID) ([]models.Invitation, error)
}

// TokenVerifierInterface validates identity provider access tokens
type TokenVerifierInterface interface {
	VerifyAccessToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// LedgerLoggerInterface emits structured events for ledger operations
type LedgerLoggerInterface interface {
	LogBalanceReportGenerated(ctx context.Context, churchID uuid.UUID, year int, movements int, durationMs int64)
	LogMovementRecorded(ctx context.Context, movement *models.Movement, actor models.Actor)
	LogExchangeRecorded(ctx context.Context, groupID uuid.UUID, from, to models.Currency, amount, rate string, actor models.Actor)
	LogMovementCancelled(ctx context.Context, churchID uuid.UUID, movementIDs []uuid.UUID, actor models.Actor, reason string)
	LogMembershipChanged(ctx context.Context, churchID uuid.UUID, userID, oldRole, newRole string, actor models.Actor)
	LogInvitationAccepted(ctx context.Context, churchID, invitationID uuid.UUID, actor models.Actor)
	LogAuthorizationFailure(ctx context.Context, operation string, churchID uuid.UUID, userID string)
	LogJobFailed(ctx context.Context, job string, errorMsg string)
}
