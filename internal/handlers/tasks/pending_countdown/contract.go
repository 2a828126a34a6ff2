//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_countdown_test
package pending_countdown

// Registry logs and counts what it expires.
type Registry interface {
	Tick() []string
}
