package repositories

import (
	"context"
	"errors"
	"fmt"

	"church-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrChurchNotFound = errors.New("church not found")

type ChurchRepository struct {
	db *gorm.DB
}

func NewChurchRepository(db *gorm.DB) ChurchRepositoryInterface {
	return &ChurchRepository{db: db}
}

func (r *ChurchRepository) Create(ctx context.Context, church *models.Church) error {
	if church == nil {
		return errors.New("church cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(church).Error; err != nil {
		return fmt.Errorf("failed to create church: %w", err)
	}

	return nil
}

func (r *ChurchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Church, error) {
	var church models.Church
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&church).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to get church: %w", err)
	}

	return &church, nil
}

func (r *ChurchRepository) GetBySlug(ctx context.Context, slug string) (*models.Church, error) {
	var church models.Church
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&church).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to get church by slug: %w", err)
	}

	return &church, nil
}

func (r *ChurchRepository) ListActive(ctx context.Context) ([]models.Church, error) {
	var churches []models.Church
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&churches).Error; err != nil {
		return nil, fmt.Errorf("failed to list churches: %w", err)
	}

	return churches, nil
}
