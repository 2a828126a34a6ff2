//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_windows_test
package slot_windows

import (
	"context"
)

type Service interface {
	Refresh(ctx context.Context) error
}
