package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"church-admin/internal/models"
	"church-admin/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// maxFutureSkew bounds how far ahead of now a movement may be dated.
	maxFutureSkew = 24 * time.Hour

	defaultMovementPageSize = 50
	maxMovementPageSize     = 200
)

type MovementService struct {
	movementRepo repositories.MovementRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	ledgerLogger LedgerLoggerInterface
	logger       *slog.Logger
	now          func() time.Time
}

func NewMovementService(
	movementRepo repositories.MovementRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	ledgerLogger LedgerLoggerInterface,
	opts ...Option,
) MovementServiceInterface {
	o := applyOptions(opts)
	return &MovementService{
		movementRepo: movementRepo,
		auditService: auditService,
		metrics:      metrics,
		ledgerLogger: ledgerLogger,
		logger:       o.logger,
		now:          o.now,
	}
}

// Record stores a single income or expense.
func (s *MovementService) Record(ctx context.Context, churchID uuid.UUID, actor models.Actor, in models.MovementInput) (*models.Movement, error) {
	if !in.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMovement, models.ErrInvalidMovementKind)
	}

	currency := models.NormalizeCurrency(string(in.Currency))
	if err := s.validateCommon(currency, in.Amount, in.OccurredAt, in.Description); err != nil {
		return nil, err
	}

	movement := &models.Movement{
		ChurchID:    churchID,
		Kind:        in.Kind,
		Currency:    currency,
		Amount:      in.Amount,
		OccurredAt:  in.OccurredAt,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		CreatedBy:   actor.UserID,
	}

	if err := s.movementRepo.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to record movement: %w", err)
	}

	s.metrics.IncrementCounter("movement_recorded", map[string]string{
		"kind":     string(movement.Kind),
		"currency": string(movement.Currency),
	})
	s.ledgerLogger.LogMovementRecorded(ctx, movement, actor)

	entry := newAuditEntry(churchID, actor, models.AuditActionMovementCreated, models.AuditResourceMovement, movement.ID.String())
	entry.SetMetadata("kind", string(movement.Kind))
	entry.SetMetadata("currency", string(movement.Currency))
	entry.SetMetadata("amount", movement.Amount.String())
	s.audit(ctx, entry)

	return movement, nil
}

// RecordExchange stores a currency exchange as an expense in the source
// currency and an income of Amount*Rate in the target currency.
func (s *MovementService) RecordExchange(ctx context.Context, churchID uuid.UUID, actor models.Actor, in models.ExchangeInput) ([]models.Movement, error) {
	from := models.NormalizeCurrency(string(in.FromCurrency))
	to := models.NormalizeCurrency(string(in.ToCurrency))

	if from == to {
		return nil, ErrSameCurrency
	}
	if err := s.validateCommon(from, in.Amount, in.OccurredAt, in.Description); err != nil {
		return nil, err
	}
	if !models.IsSupportedCurrency(to) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMovement, models.ErrInvalidCurrency)
	}
	if !in.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: exchange rate must be positive", ErrInvalidMovement)
	}

	converted := in.Amount.Mul(in.Rate).Round(2)
	if !converted.IsPositive() {
		return nil, fmt.Errorf("%w: converted amount rounds to zero", ErrInvalidMovement)
	}

	groupID := uuid.New()
	rate := in.Rate
	description := strings.TrimSpace(in.Description)

	outgoing := &models.Movement{
		ChurchID:        churchID,
		Kind:            models.MovementKindExpense,
		Currency:        from,
		Amount:          in.Amount,
		OccurredAt:      in.OccurredAt,
		Description:     description,
		Category:        models.CategoryExchange,
		ExchangeGroupID: &groupID,
		ExchangeRate:    &rate,
		CreatedBy:       actor.UserID,
	}
	incoming := &models.Movement{
		ChurchID:        churchID,
		Kind:            models.MovementKindIncome,
		Currency:        to,
		Amount:          converted,
		OccurredAt:      in.OccurredAt,
		Description:     description,
		Category:        models.CategoryExchange,
		ExchangeGroupID: &groupID,
		ExchangeRate:    &rate,
		CreatedBy:       actor.UserID,
	}

	if err := s.movementRepo.CreateExchange(ctx, outgoing, incoming); err != nil {
		return nil, fmt.Errorf("failed to record exchange: %w", err)
	}

	s.metrics.IncrementCounter("exchange_recorded", map[string]string{
		"from": string(from),
		"to":   string(to),
	})
	s.ledgerLogger.LogExchangeRecorded(ctx, groupID, from, to, in.Amount.String(), rate.String(), actor)

	entry := newAuditEntry(churchID, actor, models.AuditActionExchangeCreated, models.AuditResourceMovement, groupID.String())
	entry.SetMetadata("from_currency", string(from))
	entry.SetMetadata("to_currency", string(to))
	entry.SetMetadata("amount", in.Amount.String())
	entry.SetMetadata("rate", rate.String())
	entry.SetMetadata("converted", converted.String())
	s.audit(ctx, entry)

	return []models.Movement{*outgoing, *incoming}, nil
}

func (s *MovementService) List(ctx context.Context, filters models.MovementFilters) ([]models.Movement, int64, error) {
	if filters.From != nil && filters.To != nil && !filters.From.Before(*filters.To) {
		return nil, 0, fmt.Errorf("%w: from must be before to", ErrInvalidMovement)
	}
	if filters.Currency != "" {
		filters.Currency = models.NormalizeCurrency(string(filters.Currency))
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultMovementPageSize
	}
	if filters.Limit > maxMovementPageSize {
		filters.Limit = maxMovementPageSize
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	movements, total, err := s.movementRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movements: %w", err)
	}

	return movements, total, nil
}

// Cancel cancels a movement, or both legs when it belongs to an exchange.
func (s *MovementService) Cancel(ctx context.Context, churchID, movementID uuid.UUID, actor models.Actor, reason string) ([]models.Movement, error) {
	reason = strings.TrimSpace(reason)

	cancelled, err := s.movementRepo.Cancel(ctx, churchID, movementID, actor.UserID, reason, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrMovementNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repositories.ErrMovementAlreadyCancelled):
			return nil, ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("failed to cancel movement: %w", err)
	}

	ids := make([]uuid.UUID, len(cancelled))
	for i := range cancelled {
		ids[i] = cancelled[i].ID
	}

	s.metrics.IncrementCounter("movement_cancelled", nil)
	s.ledgerLogger.LogMovementCancelled(ctx, churchID, ids, actor, reason)

	entry := newAuditEntry(churchID, actor, models.AuditActionMovementCancelled, models.AuditResourceMovement, movementID.String())
	entry.SetMetadata("reason", reason)
	entry.SetMetadata("cancelled_count", len(cancelled))
	s.audit(ctx, entry)

	return cancelled, nil
}

func (s *MovementService) validateCommon(currency models.Currency, amount decimal.Decimal, occurredAt time.Time, description string) error {
	if !models.IsSupportedCurrency(currency) {
		return fmt.Errorf("%w: %v", ErrInvalidMovement, models.ErrInvalidCurrency)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %v", ErrInvalidMovement, models.ErrInvalidAmount)
	}
	if occurredAt.IsZero() {
		return fmt.Errorf("%w: %v", ErrInvalidMovement, models.ErrMissingOccurredAt)
	}
	if occurredAt.After(s.now().Add(maxFutureSkew)) {
		return ErrFutureMovement
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: %v", ErrInvalidMovement, models.ErrMissingDescription)
	}
	return nil
}

func (s *MovementService) audit(ctx context.Context, entry *models.AuditLog) {
	if s.auditService == nil {
		return
	}
	if err := s.auditService.Record(ctx, entry); err != nil {
		// Log error but don't fail the operation
		s.logger.ErrorContext(ctx, "failed to write audit entry",
			"error", err,
			"action", entry.Action,
			"resource_id", entry.ResourceID)
	}
}
