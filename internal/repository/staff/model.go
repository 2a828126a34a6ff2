package staff

type DeliveryStaffDB struct {
	UserID               string
	PanchayatID          *string
	AssignedPanchayatIDs []string
	StaffType            string
	AssignedWards        []int32
	IsActive             bool
	IsApproved           bool
	IsAvailable          bool
}
