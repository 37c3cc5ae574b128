package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"church-admin/internal/config"
	"church-admin/internal/services"

	"github.com/robfig/cron/v3"
)

const (
	JobBalanceRefresh = "balance_refresh"
	JobAuditPurge     = "audit_purge"

	defaultJobTimeout = 5 * time.Minute
)

// Scheduler runs the periodic ledger maintenance jobs.
type Scheduler struct {
	cron         *cron.Cron
	ctx          context.Context
	balance      services.BalanceServiceInterface
	audit        services.AuditServiceInterface
	ledgerLogger services.LedgerLoggerInterface
	metrics      services.MetricsRecorderInterface
	logger       *slog.Logger
	retention    time.Duration
	jobTimeout   time.Duration
}

// NewScheduler creates a scheduler whose cron expressions carry a seconds
// field and are evaluated in loc. Jobs still running when their next tick
// arrives are skipped.
func NewScheduler(
	ctx context.Context,
	balance services.BalanceServiceInterface,
	audit services.AuditServiceInterface,
	ledgerLogger services.LedgerLoggerInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
	loc *time.Location,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		ctx:          ctx,
		balance:      balance,
		audit:        audit,
		ledgerLogger: ledgerLogger,
		metrics:      metrics,
		logger:       logger,
		jobTimeout:   defaultJobTimeout,
	}
}

// RegisterAll registers the balance gauge refresh and the audit purge.
// An empty cron expression disables that job.
func (s *Scheduler) RegisterAll(cfg config.SchedulerConfig) error {
	s.retention = cfg.AuditRetention

	if cfg.BalanceRefreshCron != "" {
		if _, err := s.cron.AddFunc(cfg.BalanceRefreshCron, s.RunBalanceRefresh); err != nil {
			return fmt.Errorf("register %s job: %w", JobBalanceRefresh, err)
		}
	}
	if cfg.AuditRetentionCron != "" {
		if cfg.AuditRetention <= 0 {
			return fmt.Errorf("register %s job: retention must be positive", JobAuditPurge)
		}
		if _, err := s.cron.AddFunc(cfg.AuditRetentionCron, s.RunAuditPurge); err != nil {
			return fmt.Errorf("register %s job: %w", JobAuditPurge, err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out with jobs still running")
	}
}

// RunBalanceRefresh publishes the current balance gauges of every church.
func (s *Scheduler) RunBalanceRefresh() {
	s.run(JobBalanceRefresh, func(ctx context.Context) error {
		return s.balance.RefreshBalanceGauges(ctx)
	})
}

// RunAuditPurge deletes audit entries older than the retention period.
func (s *Scheduler) RunAuditPurge() {
	s.run(JobAuditPurge, func(ctx context.Context) error {
		deleted, err := s.audit.PurgeOlderThan(ctx, s.retention)
		if err != nil {
			return err
		}
		s.metrics.RecordGauge("audit_logs_purged", float64(deleted), nil)
		return nil
	})
}

// run executes fn with a timeout. Errors and panics are logged and
// counted; they never reach the cron goroutine.
func (s *Scheduler) run(name string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(s.ctx, s.jobTimeout)
	defer cancel()

	start := time.Now()
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn(ctx)
	}()

	status := "success"
	if err != nil {
		status = "failed"
		s.ledgerLogger.LogJobFailed(ctx, name, err.Error())
	} else {
		s.logger.InfoContext(ctx, "scheduled job finished",
			"job", name,
			"duration_ms", time.Since(start).Milliseconds())
	}
	s.metrics.IncrementCounter("scheduler_job", map[string]string{"job": name, "status": status})
}
