package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"church-admin/internal/models"
	"church-admin/internal/repositories"
	"church-admin/internal/services"
)

// SystemActor is recorded as the author of provisioning audit entries.
var SystemActor = models.Actor{UserID: "system:provision", Name: "provisioning"}

// Result summarises one Apply run.
type Result struct {
	ChurchesCreated  int
	ChurchesExisting int
	MembersUpserted  int
}

// Provisioner creates the churches of a manifest and grants their members.
// Applying the same manifest twice leaves the database unchanged apart
// from membership profile fields.
type Provisioner struct {
	churches     repositories.ChurchRepositoryInterface
	memberships  repositories.MembershipRepositoryInterface
	auditService services.AuditServiceInterface
	logger       *slog.Logger
}

func NewProvisioner(
	churches repositories.ChurchRepositoryInterface,
	memberships repositories.MembershipRepositoryInterface,
	auditService services.AuditServiceInterface,
	logger *slog.Logger,
) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{
		churches:     churches,
		memberships:  memberships,
		auditService: auditService,
		logger:       logger,
	}
}

func (p *Provisioner) Apply(ctx context.Context, m *Manifest) (*Result, error) {
	if m == nil {
		return nil, ErrEmptyManifest
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	for _, entry := range m.Churches {
		church, created, err := p.ensureChurch(ctx, entry)
		if err != nil {
			return res, err
		}
		if created {
			res.ChurchesCreated++
		} else {
			res.ChurchesExisting++
		}

		for _, member := range entry.Members {
			if err := p.grant(ctx, church, member); err != nil {
				return res, err
			}
			res.MembersUpserted++
		}
	}

	p.logger.InfoContext(ctx, "provisioning applied",
		"churches_created", res.ChurchesCreated,
		"churches_existing", res.ChurchesExisting,
		"members_upserted", res.MembersUpserted)

	return res, nil
}

func (p *Provisioner) ensureChurch(ctx context.Context, entry ChurchEntry) (*models.Church, bool, error) {
	church, err := p.churches.GetBySlug(ctx, entry.Slug)
	if err == nil {
		return church, false, nil
	}
	if !errors.Is(err, repositories.ErrChurchNotFound) {
		return nil, false, fmt.Errorf("look up church %s: %w", entry.Slug, err)
	}

	church = &models.Church{Name: entry.Name, Slug: entry.Slug, Active: true}
	if err := p.churches.Create(ctx, church); err != nil {
		return nil, false, fmt.Errorf("create church %s: %w", entry.Slug, err)
	}

	log := &models.AuditLog{
		ChurchID:   &church.ID,
		UserID:     SystemActor.UserID,
		Action:     models.AuditActionChurchProvisioned,
		Resource:   models.AuditResourceChurch,
		ResourceID: church.ID.String(),
	}
	log.SetMetadata("slug", church.Slug)
	if err := p.auditService.Record(ctx, log); err != nil {
		p.logger.WarnContext(ctx, "failed to audit church provisioning", "church_id", church.ID, "error", err)
	}

	p.logger.InfoContext(ctx, "church created", "church_id", church.ID, "slug", church.Slug)
	return church, true, nil
}

func (p *Provisioner) grant(ctx context.Context, church *models.Church, member MemberEntry) error {
	membership := &models.Membership{
		ChurchID:    church.ID,
		UserID:      member.UserID,
		Email:       member.Email,
		DisplayName: member.Name,
		Role:        member.Role,
	}
	if err := p.memberships.Upsert(ctx, membership); err != nil {
		return fmt.Errorf("grant %s on %s: %w", member.UserID, church.Slug, err)
	}

	log := &models.AuditLog{
		ChurchID:   &church.ID,
		UserID:     SystemActor.UserID,
		Action:     models.AuditActionMemberProvisioned,
		Resource:   models.AuditResourceMembership,
		ResourceID: member.UserID,
	}
	log.SetMetadata("role", member.Role)
	if err := p.auditService.Record(ctx, log); err != nil {
		p.logger.WarnContext(ctx, "failed to audit membership provisioning", "church_id", church.ID, "user_id", member.UserID, "error", err)
	}
	return nil
}
