//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escalation_sweep_test
package escalation_sweep

import (
	"context"
)

type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}
