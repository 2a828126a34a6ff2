package app

import (
	"context"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"dispatch/internal/handlers/kafka-consumer/order_changes"
	"dispatch/internal/handlers/rest/pending_order_delete"
	"dispatch/internal/handlers/rest/pending_orders_dismiss_post"
	"dispatch/internal/handlers/rest/pending_orders_get"
	"dispatch/internal/handlers/rest/slot_windows_get"
	"dispatch/internal/handlers/rest/unaccepted_order_delete"
	"dispatch/internal/handlers/rest/unaccepted_orders_dismiss_post"
	"dispatch/internal/handlers/rest/unaccepted_orders_get"
	"dispatch/internal/handlers/rest/ws_get"
	"dispatch/internal/handlers/tasks/escalation_sweep"
	"dispatch/internal/handlers/tasks/pending_countdown"
	"dispatch/internal/handlers/tasks/profile_refresh"
	"dispatch/internal/handlers/tasks/slot_windows"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/slot_window"
	"dispatch/internal/pkg/push"
	customerRepo "dispatch/internal/repository/customer"
	orderRepo "dispatch/internal/repository/order"
	panchayatRepo "dispatch/internal/repository/panchayat"
	slotRepo "dispatch/internal/repository/slot"
	staffRepo "dispatch/internal/repository/staff"
	"dispatch/internal/service/bridge"
	"dispatch/internal/service/escalation"
	"dispatch/internal/service/pending"
	slotService "dispatch/internal/service/slot"
	staffService "dispatch/internal/service/staff"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"dispatch/pkg/tx"
)

// Backoff for the customer contact lookup. The lookup timeout bounds it as well.
const (
	lookupInitialInterval = 100 * time.Millisecond
	lookupMaxInterval     = time.Second
	lookupMaxElapsedTime  = 5 * time.Second
	lookupRandomization   = 0.5
	lookupMultiplier      = 2.0
)

// Application is the composition root handed to cmd/service.
type Application struct {
	PendingService    PendingService
	EscalationService EscalationService
	SlotService       SlotService
	PushService       PushService
	Hub               *push.Hub
	Bridge            *bridge.Bridge
	OrderChanges      *order_changes.Handler
	BackgroundWorkers *background.Worker
}

type PendingService interface {
	pending_orders_get.Service
	pending_orders_dismiss_post.Service
	pending_order_delete.Service
}

type EscalationService interface {
	unaccepted_orders_get.Service
	unaccepted_orders_dismiss_post.Service
	unaccepted_order_delete.Service
}

type SlotService interface {
	slot_windows_get.Service
}

type PushService interface {
	ws_get.Service
}

func provideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func providePanchayatRepository(querier *querier.Querier) *panchayatRepo.Repository {
	return panchayatRepo.New(querier)
}

func provideStaffRepository(querier *querier.Querier) *staffRepo.Repository {
	return staffRepo.New(querier)
}

func provideSlotRepository(querier *querier.Querier) *slotRepo.Repository {
	return slotRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

// provideHub starts the hub loop for the lifetime of ctx.
func provideHub(ctx context.Context, log logger.Logger) *push.Hub {
	hub := push.NewHub(log)
	go hub.Run(ctx)
	return hub
}

func provideNotifier(hub *push.Hub) *push.Notifier {
	return push.NewNotifier(hub)
}

func provideCustomerRetrier(log logger.Logger) *backoff_adapter.Retrier {
	retryLog := log.With(logger.NewField("component", "customer_lookup"))

	return backoff_adapter.New(retrier.Config{
		InitialInterval: lookupInitialInterval,
		MaxInterval:     lookupMaxInterval,
		MaxElapsedTime:  lookupMaxElapsedTime,
		Randomization:   lookupRandomization,
		Multiplier:      lookupMultiplier,
		ShouldRetry:     retrier.RetryUnless(pending.ErrCustomerNotFound),
		OnRetry: func(err error, next time.Duration) {
			pending.CustomerLookupRetriesTotal.Inc()
			retryLog.With(
				logger.NewField("error", err),
				logger.NewField("next", next),
			).Debug("customer lookup retry")
		},
	})
}

func providePendingRegistry(
	log logger.Logger,
	customers *customerRepo.Repository,
	notifier *push.Notifier,
	retrier *backoff_adapter.Retrier,
	clock clockwork.Clock,
	cfg *config.Config,
) *pending.Registry {
	return pending.New(log, customers, notifier, retrier, clock, cfg.Dispatch.CustomerLookupTimeout)
}

func provideEscalationMonitor(
	log logger.Logger,
	panchayats *panchayatRepo.Repository,
	staff *staffRepo.Repository,
	txManager *tx.Manager,
	notifier *push.Notifier,
	clock clockwork.Clock,
	cfg *config.Config,
) *escalation.Monitor {
	return escalation.New(log, panchayats, staff, txManager, notifier, clock, cfg.Dispatch.EscalationLookupTimeout)
}

func provideSweeper(log logger.Logger, orders *orderRepo.Repository, monitor *escalation.Monitor) *escalation.Sweeper {
	return escalation.NewSweeper(log, orders, monitor)
}

func provideBridge(
	log logger.Logger,
	registry *pending.Registry,
	monitor *escalation.Monitor,
	notifier *push.Notifier,
) *bridge.Bridge {
	return bridge.New(log, registry, monitor, notifier)
}

func provideStaffService(
	log logger.Logger,
	profiles *staffRepo.Repository,
	subscriber *bridge.Bridge,
	cfg *config.Config,
) *staffService.Service {
	return staffService.New(log, profiles, subscriber, cfg.Dispatch.StaffUserID)
}

func provideSlotCalculator(cfg *config.Config) (*slot_window.Calculator, error) {
	location, err := cfg.Dispatch.Location()
	if err != nil {
		return nil, err
	}
	return slot_window.New(location), nil
}

func provideSlotService(
	slots *slotRepo.Repository,
	calculator *slot_window.Calculator,
	clock clockwork.Clock,
) *slotService.Service {
	return slotService.New(slots, calculator, clock)
}

func provideOrderChangesHandler(
	log logger.Logger,
	publisher *bridge.Bridge,
	clock clockwork.Clock,
	cfg *config.Config,
) *order_changes.Handler {
	return order_changes.New(log, publisher, clock, cfg.Kafka.Handlers.OrderChanges.ProcessTimeout)
}

func provideTaskList(
	cfg *config.Config,
	registry *pending.Registry,
	slots *slotService.Service,
	staff *staffService.Service,
	sweeper *escalation.Sweeper,
) []background.Task {
	tasks := []background.Task{
		pending_countdown.New(registry),
		slot_windows.New(slots, slotService.RecomputeInterval),
	}

	if cfg.Dispatch.StaffUserID != "" {
		tasks = append(tasks, profile_refresh.New(staff, cfg.Tasks.ProfileRefreshInterval))
	}
	if cfg.Tasks.EscalationSweepInterval > 0 {
		tasks = append(tasks, escalation_sweep.New(sweeper, cfg.Tasks.EscalationSweepInterval))
	}

	return tasks
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
