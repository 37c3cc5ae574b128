package repositories

import (
	"context"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
)

// MovementRepositoryInterface defines the contract for ledger movement storage
type MovementRepositoryInterface interface {
	Create(ctx context.Context, movement *models.Movement) error
	CreateExchange(ctx context.Context, outgoing, incoming *models.Movement) error
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*models.Movement, error)
	List(ctx context.Context, filters models.MovementFilters) ([]models.Movement, int64, error)
	Cancel(ctx context.Context, churchID, id uuid.UUID, by, reason string, at time.Time) ([]models.Movement, error)

	// SumByCurrencyAndKind totals active movements with occurred_at in
	// [from, to). A nil bound leaves that side open.
	SumByCurrencyAndKind(ctx context.Context, churchID uuid.UUID, from, to *time.Time) ([]models.Aggregate, error)
	// ListEntries returns active movements at or after from, oldest first.
	ListEntries(ctx context.Context, churchID uuid.UUID, from time.Time) ([]models.MovementEntry, error)
}

// ChurchRepositoryInterface defines the contract for tenant storage
type ChurchRepositoryInterface interface {
	Create(ctx context.Context, church *models.Church) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Church, error)
	GetBySlug(ctx context.Context, slug string) (*models.Church, error)
	ListActive(ctx context.Context) ([]models.Church, error)
}

// MembershipRepositoryInterface defines the contract for church membership storage
type MembershipRepositoryInterface interface {
	Get(ctx context.Context, churchID uuid.UUID, userID string) (*models.Membership, error)
	ListByChurch(ctx context.Context, churchID uuid.UUID) ([]models.Membership, error)
	Upsert(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, churchID uuid.UUID, userID string) error
	CountByRole(ctx context.Context, churchID uuid.UUID, role string) (int64, error)
}

// InvitationRepositoryInterface defines the contract for pending invitation storage
type InvitationRepositoryInterface interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	MarkAccepted(ctx context.Context, id uuid.UUID, acceptedBy string, at time.Time) error
	ListPending(ctx context.Context, churchID uuid.UUID, now time.Time) ([]models.Invitation, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filters models.AuditLogFilters) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
