package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/pending"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetCustomerContact(ctx context.Context, customerID string) (*entities.CustomerContact, error) {
	query := `SELECT name, mobile_number
		FROM profiles
		WHERE user_id::text = $1`

	var contact entities.CustomerContact
	err := r.querier.QueryRow(ctx, query, customerID).
		Scan(
			&contact.Name,
			&contact.MobileNumber,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pending.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository get contact error: %w", err)
	}

	return &contact, nil
}
