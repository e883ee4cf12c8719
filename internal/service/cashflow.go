// Package service contains the business logic: cashflow projection
// orchestration, entity CRUD validation, and member authentication.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/boddenberg/casa-cashflow-go/internal/engine"
	"github.com/boddenberg/casa-cashflow-go/internal/infra/observability"
	"github.com/boddenberg/casa-cashflow-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("service")

// projectionCacheKey returns the cache key for a household's default-window
// projection. Only the default window is cached, so one Delete invalidates
// everything the cache holds for the household.
func projectionCacheKey(householdID string) string {
	return "cashflow:" + householdID
}

// CashflowService orchestrates projection runs: it fetches the household's
// entities, runs the engine, caches the result, persists a snapshot and
// raises a notification when the pessimistic scenario contains danger days.
type CashflowService struct {
	store         port.FinanceStore
	snapshots     port.SnapshotStore
	notifications port.NotificationStore
	cache         port.Cache[*domain.CashflowProjection]
	metrics       *observability.Metrics
	logger        *zap.Logger

	daysDefault          int
	daysMax              int
	rejectNegative       bool
	twiceMonthlyFallback engine.TwiceMonthlyFallback
}

// CashflowConfig tunes the projection service.
type CashflowConfig struct {
	DaysDefault          int
	DaysMax              int
	RejectNegative       bool
	TwiceMonthlyFallback engine.TwiceMonthlyFallback
}

// NewCashflowService creates the projection service.
func NewCashflowService(
	store port.FinanceStore,
	snapshots port.SnapshotStore,
	notifications port.NotificationStore,
	cache port.Cache[*domain.CashflowProjection],
	metrics *observability.Metrics,
	logger *zap.Logger,
	cfg CashflowConfig,
) *CashflowService {
	if cfg.DaysDefault <= 0 {
		cfg.DaysDefault = engine.DefaultProjectionDays
	}
	if cfg.DaysMax <= 0 {
		cfg.DaysMax = 365
	}
	return &CashflowService{
		store:                store,
		snapshots:            snapshots,
		notifications:        notifications,
		cache:                cache,
		metrics:              metrics,
		logger:               logger,
		daysDefault:          cfg.DaysDefault,
		daysMax:              cfg.DaysMax,
		rejectNegative:       cfg.RejectNegative,
		twiceMonthlyFallback: cfg.TwiceMonthlyFallback,
	}
}

// GetProjection computes (or serves from cache) the household's cashflow
// projection. A zero startDate means today; days == 0 means the configured
// default window.
func (s *CashflowService) GetProjection(ctx context.Context, householdID string, startDate time.Time, days int) (*domain.CashflowProjection, error) {
	ctx, span := tracer.Start(ctx, "CashflowService.GetProjection")
	defer span.End()

	if days == 0 {
		days = s.daysDefault
	}
	if days < 0 || days > s.daysMax {
		return nil, &domain.ErrProjectionInput{
			Kind:    domain.ProjectionInvalidDays,
			Field:   "days",
			Message: fmt.Sprintf("must be between 1 and %d", s.daysMax),
		}
	}

	// Only the default window (starting today) is cached.
	cacheable := startDate.IsZero() && days == s.daysDefault
	if cacheable {
		if cached, ok := s.cache.Get(projectionCacheKey(householdID)); ok {
			s.metrics.IncrCacheHit("projection")
			return cached, nil
		}
		s.metrics.IncrCacheMiss("projection")
	}

	in, err := s.fetchInput(ctx, householdID)
	if err != nil {
		s.logger.Error("failed to fetch projection input",
			zap.String("household_id", householdID),
			zap.Error(err),
		)
		s.metrics.IncrExternalError("supabase")
		return nil, err
	}

	computeStart := time.Now()
	proj, err := engine.Project(in, engine.Options{
		StartDate:            startDate,
		ProjectionDays:       days,
		RejectNegative:       s.rejectNegative,
		TwiceMonthlyFallback: s.twiceMonthlyFallback,
	})
	s.metrics.RecordProjectionDuration(time.Since(computeStart))
	if err != nil {
		s.metrics.IncrProjection("error")
		return nil, err
	}
	s.metrics.IncrProjection("success")
	s.metrics.AddDangerDays("optimistic", proj.Optimistic.DangerDayCount)
	s.metrics.AddDangerDays("pessimistic", proj.Pessimistic.DangerDayCount)

	if cacheable {
		s.cache.Set(projectionCacheKey(householdID), proj)
	}

	// Snapshot and notification are best-effort; the projection itself is
	// already computed and must not fail because of them.
	s.persistSnapshot(ctx, householdID, proj, days)
	if proj.Pessimistic.DangerDayCount > 0 {
		s.notifyDangerDays(ctx, householdID, proj)
	}

	return proj, nil
}

// fetchInput loads all seven entity collections concurrently.
func (s *CashflowService) fetchInput(ctx context.Context, householdID string) (*engine.Input, error) {
	var in engine.Input
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		in.Accounts, err = s.store.ListAccounts(ctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		in.RecurringIncome, err = s.store.ListRecurringIncome(ctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		in.SingleShotIncome, err = s.store.ListSingleShotIncome(ctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		in.FixedExpenses, err = s.store.ListFixedExpenses(ctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		in.SingleShotExpenses, err = s.store.ListSingleShotExpenses(ctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		in.CreditCards, err = s.store.ListCreditCards(ctx, householdID)
		return err
	})
	g.Go(func() error {
		var err error
		in.FutureStatements, err = s.store.ListFutureStatements(ctx, householdID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *CashflowService) persistSnapshot(ctx context.Context, householdID string, proj *domain.CashflowProjection, days int) {
	snap := &domain.ProjectionSnapshot{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		ComputedAt:  time.Now().UTC(),
		StartDate:   proj.StartDate,
		Days:        days,
		Projection:  proj,
	}
	if err := s.snapshots.SaveSnapshot(ctx, snap); err != nil {
		s.logger.Warn("failed to persist projection snapshot",
			zap.String("household_id", householdID),
			zap.Error(err),
		)
	}
}

func (s *CashflowService) notifyDangerDays(ctx context.Context, householdID string, proj *domain.CashflowProjection) {
	first := proj.Pessimistic.DangerDays[0]
	n := &domain.Notification{
		ID:          uuid.NewString(),
		HouseholdID: householdID,
		Type:        domain.NotificationDangerDays,
		Title:       "Cashflow warning",
		Body: fmt.Sprintf("Your projection has %d danger day(s); the first is %s with a balance of %d cents.",
			proj.Pessimistic.DangerDayCount,
			first.Date.Format("2006-01-02"),
			first.BalanceCents,
		),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.notifications.CreateNotification(ctx, n); err != nil {
		s.logger.Warn("failed to create danger-day notification",
			zap.String("household_id", householdID),
			zap.Error(err),
		)
	}
}

// InvalidateProjection drops the household's cached projection. Called by
// the finance service after every entity mutation.
func (s *CashflowService) InvalidateProjection(householdID string) {
	s.cache.Delete(projectionCacheKey(householdID))
}

// ListSnapshots returns the household's stored projections, newest first.
func (s *CashflowService) ListSnapshots(ctx context.Context, householdID string, limit int) ([]domain.ProjectionSnapshot, error) {
	ctx, span := tracer.Start(ctx, "CashflowService.ListSnapshots")
	defer span.End()

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.snapshots.ListSnapshots(ctx, householdID, limit)
}

// GetSnapshot returns one stored projection.
func (s *CashflowService) GetSnapshot(ctx context.Context, householdID, snapshotID string) (*domain.ProjectionSnapshot, error) {
	ctx, span := tracer.Start(ctx, "CashflowService.GetSnapshot")
	defer span.End()

	return s.snapshots.GetSnapshot(ctx, householdID, snapshotID)
}

// ListNotifications returns the household's notifications.
func (s *CashflowService) ListNotifications(ctx context.Context, householdID string, unreadOnly bool) ([]domain.Notification, error) {
	ctx, span := tracer.Start(ctx, "CashflowService.ListNotifications")
	defer span.End()

	return s.notifications.ListNotifications(ctx, householdID, unreadOnly)
}

// MarkNotificationRead marks one notification as read.
func (s *CashflowService) MarkNotificationRead(ctx context.Context, notifID string) error {
	ctx, span := tracer.Start(ctx, "CashflowService.MarkNotificationRead")
	defer span.End()

	return s.notifications.MarkNotificationRead(ctx, notifID)
}

// GetMetrics returns the aggregated projection metrics.
func (s *CashflowService) GetMetrics() *domain.CashflowMetrics {
	return s.metrics.GetCashflowSnapshot()
}
