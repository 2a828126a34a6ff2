package entities

import (
	"fmt"
	"slices"
	"strings"
)

type StaffType string

const (
	StaffFixedSalary       StaffType = "fixed_salary"
	StaffRegisteredPartner StaffType = "registered_partner"
)

func (s StaffType) String() string {
	return string(s)
}

type DeliveryStaffProfile struct {
	UserID               string
	PanchayatID          *string
	AssignedPanchayatIDs []string
	StaffType            StaffType
	AssignedWards        []int
	IsActive             bool
	IsApproved           bool
	IsAvailable          bool
}

// AcceptsDispatch reports whether new ready orders should be offered to this staff member.
func (p *DeliveryStaffProfile) AcceptsDispatch() bool {
	return p != nil && p.IsApproved && p.IsAvailable
}

// Fingerprint changes whenever a field that affects order routing changes.
// Two profiles with equal fingerprints route orders identically.
func (p *DeliveryStaffProfile) Fingerprint() string {
	if p == nil {
		return ""
	}

	panchayats := slices.Clone(p.AssignedPanchayatIDs)
	slices.Sort(panchayats)
	wards := slices.Clone(p.AssignedWards)
	slices.Sort(wards)

	primary := ""
	if p.PanchayatID != nil {
		primary = *p.PanchayatID
	}

	return fmt.Sprintf("%s|%s|%s|%s|%v|%t|%t",
		p.UserID,
		primary,
		strings.Join(panchayats, ","),
		p.StaffType,
		wards,
		p.IsApproved,
		p.IsAvailable,
	)
}
