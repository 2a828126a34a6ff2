package slot

import (
	"context"
	"fmt"

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

func (r *Repository) ListActiveSlots(ctx context.Context) ([]entities.Slot, error) {
	query, args, err := qb.
		Select(
			"id::text",
			"name",
			"slot_type",
			"start_time",
			"end_time",
			"cutoff_hours_before",
			"is_active",
			"display_order",
		).
		From("cloud_kitchen_slots").
		Where(sq.Eq{"is_active": true}).
		OrderBy("display_order", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected slot repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected slot repository list error: %w", err)
	}
	defer rows.Close()

	slots := make([]entities.Slot, 0)
	for rows.Next() {
		var slotModel SlotDB
		err := rows.Scan(
			&slotModel.ID,
			&slotModel.Name,
			&slotModel.SlotType,
			&slotModel.StartTime,
			&slotModel.EndTime,
			&slotModel.CutoffHoursBefore,
			&slotModel.IsActive,
			&slotModel.DisplayOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected slot repository scan error: %w", err)
		}
		slots = append(slots, ToDomain(&slotModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected slot repository rows error: %w", err)
	}

	return slots, nil
}
