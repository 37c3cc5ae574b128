package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"church-admin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMovementNotFound         = errors.New("movement not found")
	ErrMovementAlreadyCancelled = errors.New("movement already cancelled")
)

type MovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) MovementRepositoryInterface {
	return &MovementRepository{db: db}
}

func (r *MovementRepository) Create(ctx context.Context, movement *models.Movement) error {
	if movement == nil {
		return errors.New("movement cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(movement).Error; err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}

	return nil
}

// CreateExchange stores both legs of a currency exchange atomically.
func (r *MovementRepository) CreateExchange(ctx context.Context, outgoing, incoming *models.Movement) error {
	if outgoing == nil || incoming == nil {
		return errors.New("exchange legs cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(outgoing).Error; err != nil {
			return fmt.Errorf("failed to create exchange expense: %w", err)
		}
		if err := tx.Create(incoming).Error; err != nil {
			return fmt.Errorf("failed to create exchange income: %w", err)
		}
		return nil
	})
}

func (r *MovementRepository) GetByID(ctx context.Context, churchID, id uuid.UUID) (*models.Movement, error) {
	var movement models.Movement
	err := r.db.WithContext(ctx).
		Where("id = ? AND church_id = ?", id, churchID).
		First(&movement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovementNotFound
		}
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}

	return &movement, nil
}

func (r *MovementRepository) List(ctx context.Context, filters models.MovementFilters) ([]models.Movement, int64, error) {
	var movements []models.Movement
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movement{}).Where("church_id = ?", filters.ChurchID)

	if !filters.IncludeCancelled {
		query = query.Where("status = ?", models.MovementStatusActive)
	}
	if filters.Kind != "" {
		query = query.Where("kind = ?", filters.Kind)
	}
	if filters.Currency != "" {
		query = query.Where("currency = ?", filters.Currency)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.From != nil {
		query = query.Where("occurred_at >= ?", filters.From.UTC())
	}
	if filters.To != nil {
		query = query.Where("occurred_at < ?", filters.To.UTC())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count movements: %w", err)
	}

	query = query.Order("occurred_at DESC").Order("created_at DESC").Offset(filters.Offset)
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&movements).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list movements: %w", err)
	}

	return movements, total, nil
}

// Cancel marks a movement cancelled. Both legs of an exchange are
// cancelled together. The cancelled rows are returned.
func (r *MovementRepository) Cancel(ctx context.Context, churchID, id uuid.UUID, by, reason string, at time.Time) ([]models.Movement, error) {
	var cancelled []models.Movement

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var movement models.Movement
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND church_id = ?", id, churchID).
			First(&movement).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovementNotFound
			}
			return fmt.Errorf("failed to load movement: %w", err)
		}

		if movement.IsCancelled() {
			return ErrMovementAlreadyCancelled
		}

		group := []models.Movement{movement}
		if movement.IsExchange() {
			group = nil
			if err := tx.Where("church_id = ? AND exchange_group_id = ? AND status = ?",
				churchID, *movement.ExchangeGroupID, models.MovementStatusActive).
				Order("created_at ASC").
				Find(&group).Error; err != nil {
				return fmt.Errorf("failed to load exchange group: %w", err)
			}
		}

		for i := range group {
			group[i].Cancel(by, reason, at)
			if err := tx.Model(&group[i]).Updates(map[string]interface{}{
				"status":        group[i].Status,
				"cancelled_at":  group[i].CancelledAt,
				"cancelled_by":  group[i].CancelledBy,
				"cancel_reason": group[i].CancelReason,
			}).Error; err != nil {
				return fmt.Errorf("failed to cancel movement %s: %w", group[i].ID, err)
			}
		}

		cancelled = group
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

type aggregateRow struct {
	Currency string
	Kind     string
	Total    decimal.Decimal
}

func (r *MovementRepository) SumByCurrencyAndKind(ctx context.Context, churchID uuid.UUID, from, to *time.Time) ([]models.Aggregate, error) {
	var rows []aggregateRow

	query := r.db.WithContext(ctx).Model(&models.Movement{}).
		Select("currency, kind, COALESCE(SUM(amount), 0) AS total").
		Where("church_id = ? AND status = ?", churchID, models.MovementStatusActive)

	if from != nil {
		query = query.Where("occurred_at >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("occurred_at < ?", to.UTC())
	}

	if err := query.Group("currency, kind").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum movements: %w", err)
	}

	aggregates := make([]models.Aggregate, 0, len(rows))
	for _, row := range rows {
		agg, err := models.NewAggregate(row.Currency, row.Kind, row.Total)
		if err != nil {
			return nil, fmt.Errorf("invalid aggregate row %s/%s: %w", row.Currency, row.Kind, err)
		}
		aggregates = append(aggregates, agg)
	}

	return aggregates, nil
}

func (r *MovementRepository) ListEntries(ctx context.Context, churchID uuid.UUID, from time.Time) ([]models.MovementEntry, error) {
	var movements []models.Movement

	err := r.db.WithContext(ctx).
		Select("occurred_at, amount, currency, kind").
		Where("church_id = ? AND status = ? AND occurred_at >= ?", churchID, models.MovementStatusActive, from.UTC()).
		Order("occurred_at ASC").
		Find(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list movement entries: %w", err)
	}

	entries := make([]models.MovementEntry, len(movements))
	for i := range movements {
		entries[i] = movements[i].Entry()
	}

	return entries, nil
}
