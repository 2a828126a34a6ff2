package entities

type Slot struct {
	ID                string
	Name              string
	SlotType          string
	StartMinute       int // minutes since local midnight
	EndMinute         int // end <= start means the slot runs past midnight
	CutoffHoursBefore int
	IsActive          bool
	DisplayOrder      int
}

func (s Slot) IsOvernight() bool {
	return s.EndMinute <= s.StartMinute
}

type SlotStatusType string

const (
	SlotOpen        SlotStatusType = "open"
	SlotClosingSoon SlotStatusType = "closing_soon"
	SlotClosed      SlotStatusType = "closed"
)

func (s SlotStatusType) String() string {
	return string(s)
}

type TimeRemaining struct {
	Hours   int
	Minutes int
}

type SlotWindowState struct {
	IsOpen          bool
	TimeUntilCutoff *TimeRemaining
	Status          SlotStatusType
}

type SlotWindow struct {
	Slot  Slot
	State SlotWindowState
}
