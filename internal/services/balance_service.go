package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"church-admin/internal/models"
	"church-admin/internal/repositories"
	"church-admin/internal/rollup"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const minReportYear = 1900

// BalanceService feeds the rollup engine with the three ranges it needs
// and publishes the resulting balances.
type BalanceService struct {
	movementRepo repositories.MovementRepositoryInterface
	churchRepo   repositories.ChurchRepositoryInterface
	metrics      MetricsRecorderInterface
	ledgerLogger LedgerLoggerInterface
	logger       *slog.Logger
	now          func() time.Time
	location     *time.Location
}

func NewBalanceService(
	movementRepo repositories.MovementRepositoryInterface,
	churchRepo repositories.ChurchRepositoryInterface,
	metrics MetricsRecorderInterface,
	ledgerLogger LedgerLoggerInterface,
	opts ...Option,
) BalanceServiceInterface {
	o := applyOptions(opts)
	return &BalanceService{
		movementRepo: movementRepo,
		churchRepo:   churchRepo,
		metrics:      metrics,
		ledgerLogger: ledgerLogger,
		logger:       o.logger,
		now:          o.now,
		location:     o.location,
	}
}

// GetBalanceReport computes the report as of now in the service location.
// A zero year selects the current year.
func (s *BalanceService) GetBalanceReport(ctx context.Context, churchID uuid.UUID, year int) (*models.BalanceReport, error) {
	started := time.Now()
	asOf := s.now().In(s.location)

	if year == 0 {
		year = asOf.Year()
	}
	if year < minReportYear || year > asOf.Year()+1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, year)
	}

	windowStart, _ := rollup.Window(asOf)
	yearStart, yearEnd := rollup.YearBounds(year, s.location)

	var (
		base    []models.Aggregate
		entries []models.MovementEntry
		annual  []models.Aggregate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		base, err = s.movementRepo.SumByCurrencyAndKind(gctx, churchID, nil, &windowStart)
		if err != nil {
			return fmt.Errorf("base balances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.movementRepo.ListEntries(gctx, churchID, windowStart)
		if err != nil {
			return fmt.Errorf("window movements: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		annual, err = s.movementRepo.SumByCurrencyAndKind(gctx, churchID, &yearStart, &yearEnd)
		if err != nil {
			return fmt.Errorf("annual totals: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.metrics.IncrementCounter("balance_report_failed", nil)
		s.logger.ErrorContext(ctx, "failed to build balance report",
			"error", err,
			"church_id", churchID,
			"year", year)
		return nil, fmt.Errorf("failed to build balance report: %w", err)
	}

	report := rollup.Compute(rollup.Input{
		AsOf:             asOf,
		TargetYear:       year,
		BaseAggregates:   base,
		WindowMovements:  entries,
		AnnualAggregates: annual,
	})
	report.ChurchID = churchID
	report.GeneratedAt = s.now()

	elapsed := time.Since(started)
	s.metrics.IncrementCounter("balance_report_generated", nil)
	s.metrics.RecordProcessingTime("balance_report", elapsed)
	s.ledgerLogger.LogBalanceReportGenerated(ctx, churchID, year, len(entries), elapsed.Milliseconds())

	return report, nil
}

// RefreshBalanceGauges publishes the current balance of every active
// church. A failing church does not stop the others.
func (s *BalanceService) RefreshBalanceGauges(ctx context.Context) error {
	churches, err := s.churchRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list churches: %w", err)
	}

	var errs []error
	for _, church := range churches {
		if err := ctx.Err(); err != nil {
			return err
		}

		report, err := s.GetBalanceReport(ctx, church.ID, 0)
		if err != nil {
			errs = append(errs, fmt.Errorf("church %s: %w", church.Slug, err))
			continue
		}

		for currency, balance := range report.CurrentBalance {
			s.metrics.RecordGauge("church_balance", balance.InexactFloat64(), map[string]string{
				"church":   church.Slug,
				"currency": string(currency),
			})
		}
	}

	return errors.Join(errs...)
}
