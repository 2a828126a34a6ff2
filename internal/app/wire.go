//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/push"
	"dispatch/internal/service/escalation"
	"dispatch/internal/service/pending"
	slotService "dispatch/internal/service/slot"
	"dispatch/pkg/logger"
)

// InitializeApplication builds the dispatch service for cmd/service.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideClock,
		provideTxManager,
		provideQuerier,

		provideCustomerRepository,
		providePanchayatRepository,
		provideStaffRepository,
		provideSlotRepository,
		provideOrderRepository,

		provideHub,
		provideNotifier,
		provideCustomerRetrier,

		providePendingRegistry,
		provideEscalationMonitor,
		provideSweeper,
		provideBridge,
		provideStaffService,
		provideSlotCalculator,
		provideSlotService,
		provideOrderChangesHandler,

		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(PendingService), new(*pending.Registry)),
		wire.Bind(new(EscalationService), new(*escalation.Monitor)),
		wire.Bind(new(SlotService), new(*slotService.Service)),
		wire.Bind(new(PushService), new(*push.Hub)),
	)
	return &Application{}, nil
}
