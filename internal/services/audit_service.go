package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"church-admin/internal/models"
	"church-admin/internal/repositories"

	"github.com/google/uuid"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
	exportBatchSize      = 500
)

var auditCSVHeader = []string{
	"created_at", "user_id", "actor_email", "actor_name", "actor_role",
	"action", "resource", "resource_id", "ip_address", "metadata",
}

// AuditService handles audit logging operations
type AuditService struct {
	repo           repositories.AuditLogRepositoryInterface
	membershipRepo repositories.MembershipRepositoryInterface
	logger         *slog.Logger
	now            func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, membershipRepo repositories.MembershipRepositoryInterface, opts ...Option) AuditServiceInterface {
	o := applyOptions(opts)
	return &AuditService{
		repo:           repo,
		membershipRepo: membershipRepo,
		logger:         o.logger,
		now:            o.now,
	}
}

// ValidateAuditAction validates that the action is one of the recorded types
func ValidateAuditAction(action string) error {
	switch action {
	case models.AuditActionMovementCreated,
		models.AuditActionMovementCancelled,
		models.AuditActionExchangeCreated,
		models.AuditActionBalanceViewed,
		models.AuditActionAuditExported,
		models.AuditActionMemberRoleChanged,
		models.AuditActionMemberRemoved,
		models.AuditActionInvitationCreated,
		models.AuditActionInvitationAccept,
		models.AuditActionChurchProvisioned,
		models.AuditActionMemberProvisioned:
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", ErrInvalidAuditLog, action)
}

// Record stores an audit entry after validating its action
func (s *AuditService) Record(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateAuditAction(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// List returns audit entries of a church with the actor resolved from the
// church memberships. Actors who left the church keep only their user ID.
func (s *AuditService) List(ctx context.Context, filters models.AuditLogFilters) ([]*models.EnrichedAuditLog, int64, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, 0, ErrAuditDateRange
	}

	if filters.Limit <= 0 {
		filters.Limit = defaultAuditPageSize
	}
	if filters.Limit > maxAuditPageSize {
		filters.Limit = maxAuditPageSize
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	logs, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}

	enriched, err := s.enrich(ctx, filters, logs)
	if err != nil {
		return nil, 0, err
	}

	return enriched, total, nil
}

// ExportCSV writes every audit entry matching filters to w and returns
// the number of rows written, excluding the header.
func (s *AuditService) ExportCSV(ctx context.Context, filters models.AuditLogFilters, w io.Writer) (int, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return 0, ErrAuditDateRange
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(auditCSVHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}

	members, err := s.membersByUser(ctx, filters)
	if err != nil {
		return 0, err
	}

	// Entries recorded while the export runs stay out of it.
	end := s.now()
	if filters.EndDate == nil || filters.EndDate.After(end) {
		filters.EndDate = &end
	}
	filters.Offset = 0
	filters.Limit = exportBatchSize
	filters.Cursor = nil

	written := 0
	for {
		logs, _, err := s.repo.List(ctx, filters)
		if err != nil {
			return written, fmt.Errorf("failed to list audit logs: %w", err)
		}

		for _, log := range logs {
			if err := writer.Write(auditCSVRow(enrichOne(log, members))); err != nil {
				return written, fmt.Errorf("failed to write csv row: %w", err)
			}
			written++
		}

		if len(logs) < exportBatchSize {
			break
		}
		filters.Cursor = models.CursorOf(logs[len(logs)-1])
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return written, fmt.Errorf("failed to flush csv: %w", err)
	}

	return written, nil
}

// PurgeOlderThan deletes audit entries older than retention
func (s *AuditService) PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("%w: retention must be positive", ErrInvalidAuditLog)
	}

	cutoff := s.now().Add(-retention)
	deleted, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit logs: %w", err)
	}

	s.logger.InfoContext(ctx, "audit logs purged",
		"deleted", deleted,
		"cutoff", cutoff)

	return deleted, nil
}

func (s *AuditService) enrich(ctx context.Context, filters models.AuditLogFilters, logs []*models.AuditLog) ([]*models.EnrichedAuditLog, error) {
	members, err := s.membersByUser(ctx, filters)
	if err != nil {
		return nil, err
	}

	enriched := make([]*models.EnrichedAuditLog, len(logs))
	for i, log := range logs {
		enriched[i] = enrichOne(log, members)
	}
	return enriched, nil
}

func (s *AuditService) membersByUser(ctx context.Context, filters models.AuditLogFilters) (map[string]models.Membership, error) {
	memberships, err := s.membershipRepo.ListByChurch(ctx, filters.ChurchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load church members: %w", err)
	}

	members := make(map[string]models.Membership, len(memberships))
	for _, m := range memberships {
		members[m.UserID] = m
	}
	return members, nil
}

func enrichOne(log *models.AuditLog, members map[string]models.Membership) *models.EnrichedAuditLog {
	entry := &models.EnrichedAuditLog{AuditLog: log}
	if m, ok := members[log.UserID]; ok {
		entry.ActorEmail = m.Email
		entry.ActorName = m.Label()
		entry.ActorRole = m.Role
	}
	return entry
}

func auditCSVRow(entry *models.EnrichedAuditLog) []string {
	metadata := ""
	if len(entry.Metadata) > 0 {
		if raw, err := json.Marshal(entry.Metadata); err == nil {
			metadata = string(raw)
		}
	}

	row := []string{
		entry.CreatedAt.UTC().Format(time.RFC3339),
		entry.UserID,
		entry.ActorEmail,
		entry.ActorName,
		entry.ActorRole,
		entry.Action,
		entry.Resource,
		entry.ResourceID,
		entry.IPAddress,
		metadata,
	}
	for i := 1; i < len(row); i++ {
		row[i] = spreadsheetSafe(row[i])
	}
	return row
}

// spreadsheetSafe prefixes a quote to cells a spreadsheet would evaluate as
// a formula.
func spreadsheetSafe(cell string) string {
	if cell != "" && strings.ContainsRune("=+-@\t\r", rune(cell[0])) {
		return "'" + cell
	}
	return cell
}

// newAuditEntry builds an audit entry for an action taken by actor inside a church.
func newAuditEntry(churchID uuid.UUID, actor models.Actor, action, resource, resourceID string) *models.AuditLog {
	return &models.AuditLog{
		ChurchID:   &churchID,
		UserID:     actor.UserID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	}
}
