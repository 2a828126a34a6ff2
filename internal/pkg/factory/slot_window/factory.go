package slot_window

import (
	"time"

	"dispatch/internal/entities"
)

const (
	minutesPerDay        = 24 * 60
	closingSoonThreshold = 60 // minutes
)

// Calculator derives the ordering window of a slot at a given instant.
// It holds no state besides the time zone slot times are expressed in.
type Calculator struct {
	location *time.Location
}

func New(location *time.Location) *Calculator {
	if location == nil {
		location = time.UTC
	}
	return &Calculator{
		location: location,
	}
}

func (c *Calculator) ComputeWindow(slot entities.Slot, now time.Time) entities.SlotWindowState {
	local := now.In(c.location)
	nowMinute := local.Hour()*60 + local.Minute()

	start := normalize(slot.StartMinute)
	end := normalize(slot.EndMinute)
	cutoff := normalize(start - slot.CutoffHoursBefore*60)

	if slotEnded(start, end, nowMinute) {
		return closedState()
	}

	if !beforeCutoff(start, cutoff, nowMinute) {
		return closedState()
	}

	remaining := normalize(cutoff - nowMinute)

	status := entities.SlotOpen
	if remaining <= closingSoonThreshold {
		status = entities.SlotClosingSoon
	}

	return entities.SlotWindowState{
		IsOpen: true,
		TimeUntilCutoff: &entities.TimeRemaining{
			Hours:   remaining / 60,
			Minutes: remaining % 60,
		},
		Status: status,
	}
}

func slotEnded(start, end, now int) bool {
	if end > start {
		return now >= end
	}
	// overnight: this morning's part is over and tonight's has not begun
	return now >= end && now < start
}

// beforeCutoff: a cutoff later in the day than the start belongs to the previous day.
// Only the reachable half of the wrapped condition is evaluated.
func beforeCutoff(start, cutoff, now int) bool {
	if cutoff <= start {
		return now < cutoff
	}
	return now < start && now < cutoff
}

func normalize(minutes int) int {
	return ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
}

func closedState() entities.SlotWindowState {
	return entities.SlotWindowState{
		IsOpen:          false,
		TimeUntilCutoff: nil,
		Status:          entities.SlotClosed,
	}
}
