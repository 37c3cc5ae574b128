package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound        = errors.New("invitation not found")
	ErrInvitationAlreadyAccepted = errors.New("invitation already accepted")
)

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepositoryInterface {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	if invitation == nil {
		return errors.New("invitation cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	return nil
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return &invitation, nil
}

// MarkAccepted flips a pending invitation to accepted. Only one caller
// can win when two accept the same invitation concurrently.
func (r *InvitationRepository) MarkAccepted(ctx context.Context, id uuid.UUID, acceptedBy string, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("id = ? AND accepted_at IS NULL", id).
		Updates(map[string]interface{}{
			"accepted_at": at,
			"accepted_by": acceptedBy,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to accept invitation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvitationAlreadyAccepted
	}

	return nil
}

func (r *InvitationRepository) ListPending(ctx context.Context, churchID uuid.UUID, now time.Time) ([]models.Invitation, error) {
	var invitations []models.Invitation
	if err := r.db.WithContext(ctx).
		Where("church_id = ? AND accepted_at IS NULL AND expires_at > ?", churchID, now.UTC()).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	return invitations, nil
}
