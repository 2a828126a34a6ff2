package eligibility

import (
	"slices"

	"dispatch/internal/entities"
)

// Matches reports whether order falls inside the service area of profile.
// A missing profile never matches.
func Matches(order entities.Order, profile *entities.DeliveryStaffProfile) bool {
	if profile == nil {
		return false
	}

	primary := profile.PanchayatID != nil && *profile.PanchayatID == order.PanchayatID
	if !primary && !slices.Contains(profile.AssignedPanchayatIDs, order.PanchayatID) {
		return false
	}

	if profile.StaffType == entities.StaffRegisteredPartner && len(profile.AssignedWards) > 0 {
		return order.WardNumber != nil && slices.Contains(profile.AssignedWards, *order.WardNumber)
	}

	return true
}
