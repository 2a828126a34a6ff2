package staff

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	staffservice "dispatch/internal/service/staff"
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

func (r *Repository) GetDeliveryProfile(ctx context.Context, userID string) (*entities.DeliveryStaffProfile, error) {
	query := `SELECT user_id::text, panchayat_id::text, assigned_panchayat_ids::text[], staff_type,
			assigned_wards, is_active, is_approved, is_available
		FROM delivery_staff
		WHERE user_id::text = $1`

	var staffModel DeliveryStaffDB
	err := r.querier.QueryRow(ctx, query, userID).
		Scan(
			&staffModel.UserID,
			&staffModel.PanchayatID,
			&staffModel.AssignedPanchayatIDs,
			&staffModel.StaffType,
			&staffModel.AssignedWards,
			&staffModel.IsActive,
			&staffModel.IsApproved,
			&staffModel.IsAvailable,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staffservice.ErrProfileNotFound
		}
		return nil, fmt.Errorf("unexpected staff repository get profile error: %w", err)
	}

	return ToDomain(&staffModel), nil
}

// CountAvailableStaff counts active, approved and available staff assigned to the panchayat.
func (r *Repository) CountAvailableStaff(ctx context.Context, panchayatID string) (int, error) {
	query, args, err := qb.
		Select("COUNT(*)").
		From("delivery_staff").
		Where(sq.Eq{
			"is_active":    true,
			"is_approved":  true,
			"is_available": true,
		}).
		Where("assigned_panchayat_ids::text[] @> ARRAY[?]::text[]", panchayatID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected staff repository count error: %w", err)
	}

	var count int
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected staff repository count error: %w", err)
	}

	return count, nil
}
