package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepositoryInterface {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Get(ctx context.Context, churchID uuid.UUID, userID string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("church_id = ? AND user_id = ?", churchID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &membership, nil
}

func (r *MembershipRepository) ListByChurch(ctx context.Context, churchID uuid.UUID) ([]models.Membership, error) {
	var memberships []models.Membership
	if err := r.db.WithContext(ctx).
		Where("church_id = ?", churchID).
		Order("role ASC").Order("email ASC").
		Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return memberships, nil
}

// Upsert inserts the membership or updates role and profile fields of the
// existing one for the same church and user. The stored row is loaded
// back into membership.
func (r *MembershipRepository) Upsert(ctx context.Context, membership *models.Membership) error {
	if membership == nil {
		return errors.New("membership cannot be nil")
	}

	membership.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "church_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "display_name", "role", "updated_at"}),
	}).Create(membership).Error
	if err != nil {
		return fmt.Errorf("failed to upsert membership: %w", err)
	}

	stored, err := r.Get(ctx, membership.ChurchID, membership.UserID)
	if err != nil {
		return err
	}
	*membership = *stored

	return nil
}

func (r *MembershipRepository) Delete(ctx context.Context, churchID uuid.UUID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("church_id = ? AND user_id = ?", churchID, userID).
		Delete(&models.Membership{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

func (r *MembershipRepository) CountByRole(ctx context.Context, churchID uuid.UUID, role string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("church_id = ? AND role = ?", churchID, role).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}

	return count, nil
}
