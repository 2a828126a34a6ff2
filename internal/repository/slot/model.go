package slot

import "github.com/jackc/pgx/v5/pgtype"

type SlotDB struct {
	ID                string
	Name              string
	SlotType          string
	StartTime         pgtype.Time
	EndTime           pgtype.Time
	CutoffHoursBefore int32
	IsActive          bool
	DisplayOrder      int32
}
