package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"church-admin/internal/models"
	"church-admin/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const invitationSecretBytes = 32

type MembershipService struct {
	membershipRepo repositories.MembershipRepositoryInterface
	invitationRepo repositories.InvitationRepositoryInterface
	auditService   AuditServiceInterface
	ledgerLogger   LedgerLoggerInterface
	logger         *slog.Logger
	now            func() time.Time
	invitationTTL  time.Duration
	bcryptCost     int
}

func NewMembershipService(
	membershipRepo repositories.MembershipRepositoryInterface,
	invitationRepo repositories.InvitationRepositoryInterface,
	auditService AuditServiceInterface,
	ledgerLogger LedgerLoggerInterface,
	opts ...Option,
) MembershipServiceInterface {
	o := applyOptions(opts)
	return &MembershipService{
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		auditService:   auditService,
		ledgerLogger:   ledgerLogger,
		logger:         o.logger,
		now:            o.now,
		invitationTTL:  o.invitationTTL,
		bcryptCost:     o.bcryptCost,
	}
}

func (s *MembershipService) GetMembership(ctx context.Context, churchID uuid.UUID, userID string) (*models.Membership, error) {
	membership, err := s.membershipRepo.Get(ctx, churchID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrMembershipNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return membership, nil
}

func (s *MembershipService) List(ctx context.Context, churchID uuid.UUID) ([]models.Membership, error) {
	memberships, err := s.membershipRepo.ListByChurch(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// ChangeRole sets the role of an existing member. The last admin of a
// church cannot be demoted.
func (s *MembershipService) ChangeRole(ctx context.Context, churchID uuid.UUID, userID, role string, actor models.Actor) (*models.Membership, error) {
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	membership, err := s.GetMembership(ctx, churchID, userID)
	if err != nil {
		return nil, err
	}

	oldRole := membership.Role
	if oldRole == role {
		return membership, nil
	}

	if oldRole == models.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, churchID); err != nil {
			return nil, err
		}
	}

	membership.Role = role
	if err := s.membershipRepo.Upsert(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	s.ledgerLogger.LogMembershipChanged(ctx, churchID, userID, oldRole, role, actor)

	entry := newAuditEntry(churchID, actor, models.AuditActionMemberRoleChanged, models.AuditResourceMembership, userID)
	entry.SetMetadata("old_role", oldRole)
	entry.SetMetadata("new_role", role)
	s.audit(ctx, entry)

	return membership, nil
}

// Remove deletes a membership. The last admin of a church cannot be removed.
func (s *MembershipService) Remove(ctx context.Context, churchID uuid.UUID, userID string, actor models.Actor) error {
	membership, err := s.GetMembership(ctx, churchID, userID)
	if err != nil {
		return err
	}

	if membership.Role == models.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, churchID); err != nil {
			return err
		}
	}

	if err := s.membershipRepo.Delete(ctx, churchID, userID); err != nil {
		if errors.Is(err, repositories.ErrMembershipNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove membership: %w", err)
	}

	s.ledgerLogger.LogMembershipChanged(ctx, churchID, userID, membership.Role, "", actor)

	entry := newAuditEntry(churchID, actor, models.AuditActionMemberRemoved, models.AuditResourceMembership, userID)
	entry.SetMetadata("role", membership.Role)
	entry.SetMetadata("email", membership.Email)
	s.audit(ctx, entry)

	return nil
}

// Invite creates an invitation and returns its one-time token, formatted
// as "<invitation id>.<secret>". Only a bcrypt hash of the secret is kept.
func (s *MembershipService) Invite(ctx context.Context, churchID uuid.UUID, email, role string, actor models.Actor) (*models.CreatedInvitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !models.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInvitation)
	}
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash invitation secret: %w", err)
	}

	invitation := &models.Invitation{
		ChurchID:  churchID,
		Email:     email,
		Role:      role,
		TokenHash: string(hash),
		InvitedBy: actor.UserID,
		ExpiresAt: s.now().Add(s.invitationTTL),
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	entry := newAuditEntry(churchID, actor, models.AuditActionInvitationCreated, models.AuditResourceInvitation, invitation.ID.String())
	entry.SetMetadata("email", email)
	entry.SetMetadata("role", role)
	s.audit(ctx, entry)

	return &models.CreatedInvitation{
		Invitation: invitation,
		Token:      invitation.ID.String() + "." + secret,
	}, nil
}

// AcceptInvitation turns a valid invitation into a membership for the
// signed-in actor, whose email must match the invited address.
func (s *MembershipService) AcceptInvitation(ctx context.Context, token string, actor models.Actor) (*models.Membership, error) {
	idPart, secret, ok := strings.Cut(strings.TrimSpace(token), ".")
	if !ok || secret == "" {
		return nil, ErrInvalidInvitation
	}

	invitationID, err := uuid.Parse(idPart)
	if err != nil {
		return nil, ErrInvalidInvitation
	}

	invitation, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, ErrInvalidInvitation
		}
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}

	if invitation.IsAccepted() {
		return nil, ErrInvalidInvitation
	}
	if err := bcrypt.CompareHashAndPassword([]byte(invitation.TokenHash), []byte(secret)); err != nil {
		return nil, ErrInvalidInvitation
	}
	if invitation.IsExpired(s.now()) {
		return nil, ErrInvitationExpired
	}
	if !strings.EqualFold(invitation.Email, strings.TrimSpace(actor.Email)) {
		return nil, ErrInvitationEmailMismatch
	}

	existing, err := s.membershipRepo.Get(ctx, invitation.ChurchID, actor.UserID)
	switch {
	case err == nil:
		if existing.Role == models.RoleAdmin && invitation.Role != models.RoleAdmin {
			if err := s.ensureAnotherAdmin(ctx, invitation.ChurchID); err != nil {
				return nil, err
			}
		}
	case !errors.Is(err, repositories.ErrMembershipNotFound):
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	if err := s.invitationRepo.MarkAccepted(ctx, invitation.ID, actor.UserID, s.now()); err != nil {
		if errors.Is(err, repositories.ErrInvitationAlreadyAccepted) {
			return nil, ErrInvalidInvitation
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	membership := &models.Membership{
		ChurchID:    invitation.ChurchID,
		UserID:      actor.UserID,
		Email:       strings.ToLower(strings.TrimSpace(actor.Email)),
		DisplayName: actor.Name,
		Role:        invitation.Role,
	}
	if err := s.membershipRepo.Upsert(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	s.ledgerLogger.LogInvitationAccepted(ctx, invitation.ChurchID, invitation.ID, actor)

	entry := newAuditEntry(invitation.ChurchID, actor, models.AuditActionInvitationAccept, models.AuditResourceInvitation, invitation.ID.String())
	entry.SetMetadata("role", invitation.Role)
	s.audit(ctx, entry)

	return membership, nil
}

// ListPendingInvitations returns invitations that were neither accepted
// nor expired.
func (s *MembershipService) ListPendingInvitations(ctx context.Context, churchID uuid.UUID) ([]models.Invitation, error) {
	invitations, err := s.invitationRepo.ListPending(ctx, churchID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

func (s *MembershipService) ensureAnotherAdmin(ctx context.Context, churchID uuid.UUID) error {
	admins, err := s.membershipRepo.CountByRole(ctx, churchID, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins <= 1 {
		return ErrLastAdmin
	}
	return nil
}

func (s *MembershipService) audit(ctx context.Context, entry *models.AuditLog) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.Record(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to write audit entry",
			"error", err,
			"action", entry.Action,
			"resource_id", entry.ResourceID)
	}
}

func generateSecret() (string, error) {
	buf := make([]byte, invitationSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
