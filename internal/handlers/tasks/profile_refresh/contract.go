//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_refresh_test
package profile_refresh

import (
	"context"
)

type Service interface {
	Refresh(ctx context.Context) error
}
