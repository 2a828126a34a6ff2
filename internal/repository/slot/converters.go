package slot

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"dispatch/internal/entities"
)

func ToDomain(s *SlotDB) entities.Slot {
	return entities.Slot{
		ID:                s.ID,
		Name:              s.Name,
		SlotType:          s.SlotType,
		StartMinute:       minuteOfDay(s.StartTime),
		EndMinute:         minuteOfDay(s.EndTime),
		CutoffHoursBefore: int(s.CutoffHoursBefore),
		IsActive:          s.IsActive,
		DisplayOrder:      int(s.DisplayOrder),
	}
}

// minuteOfDay drops seconds, slot times are compared at minute granularity.
func minuteOfDay(t pgtype.Time) int {
	return int(time.Duration(t.Microseconds) * time.Microsecond / time.Minute)
}
