//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_orders_dismiss_post_test
package pending_orders_dismiss_post

type Service interface {
	DismissAlert()
}
