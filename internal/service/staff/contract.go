//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=staff_test
package staff

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type serviceLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type ProfileRepository interface {
	GetDeliveryProfile(ctx context.Context, userID string) (*entities.DeliveryStaffProfile, error)
}

type Subscriber interface {
	SetProfile(profile *entities.DeliveryStaffProfile)
}
