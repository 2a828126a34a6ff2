package order

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListAwaitingDelivery returns ready, unassigned delivery orders last updated
// before readyBefore, oldest first.
func (r *Repository) ListAwaitingDelivery(ctx context.Context, readyBefore time.Time) ([]entities.Order, error) {
	query, args, err := qb.
		Select(
			"id::text",
			"order_number",
			"customer_id::text",
			"service_type",
			"total_amount::text",
			"cook_status",
			"delivery_status",
			"assigned_delivery_id::text",
			"delivery_address",
			"delivery_instructions",
			"estimated_delivery_minutes",
			"delivery_eta",
			"panchayat_id::text",
			"ward_number",
			"created_at",
			"updated_at",
		).
		From("orders").
		Where(sq.Eq{
			"cook_status":          entities.CookReady.String(),
			"delivery_status":      entities.DeliveryPending.String(),
			"assigned_delivery_id": nil,
			"service_type": []string{
				entities.ServiceCloudKitchen.String(),
				entities.ServiceHomemade.String(),
			},
		}).
		Where(sq.Lt{"updated_at": readyBefore}).
		OrderBy("updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.ID,
			&orderModel.OrderNumber,
			&orderModel.CustomerID,
			&orderModel.ServiceType,
			&orderModel.TotalAmount,
			&orderModel.CookStatus,
			&orderModel.DeliveryStatus,
			&orderModel.AssignedDeliveryID,
			&orderModel.DeliveryAddress,
			&orderModel.DeliveryInstructions,
			&orderModel.EstimatedDeliveryMinutes,
			&orderModel.DeliveryETA,
			&orderModel.PanchayatID,
			&orderModel.WardNumber,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}

		order, err := ToDomain(&orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository convert error: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}
