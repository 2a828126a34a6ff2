package panchayat

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

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

// GetPanchayatNames maps each known id to its name. Unknown ids are absent from the result.
func (r *Repository) GetPanchayatNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := qb.
		Select("id::text", "name").
		From("panchayats").
		Where(sq.Eq{"id::text": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected panchayat repository get names error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected panchayat repository get names error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("unexpected panchayat repository scan error: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected panchayat repository rows error: %w", err)
	}

	return names, nil
}
