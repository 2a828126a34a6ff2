package staff

import "dispatch/internal/entities"

func ToDomain(s *DeliveryStaffDB) *entities.DeliveryStaffProfile {
	if s == nil {
		return nil
	}

	wards := make([]int, 0, len(s.AssignedWards))
	for _, w := range s.AssignedWards {
		wards = append(wards, int(w))
	}

	return &entities.DeliveryStaffProfile{
		UserID:               s.UserID,
		PanchayatID:          s.PanchayatID,
		AssignedPanchayatIDs: s.AssignedPanchayatIDs,
		StaffType:            entities.StaffType(s.StaffType),
		AssignedWards:        wards,
		IsActive:             s.IsActive,
		IsApproved:           s.IsApproved,
		IsAvailable:          s.IsAvailable,
	}
}
