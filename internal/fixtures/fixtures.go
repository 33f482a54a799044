// Package fixtures holds the seed data loaded into a fresh database:
// the bootstrap admin accounts, the leave type reference table and a
// couple of sample officers.
package fixtures

import "github.com/ethekwini-metro/pts-backend-go/internal/domain/user"

// LeaveTypeConfig is display metadata for a leave type code.
type LeaveTypeConfig struct {
	Code   string
	Name   string
	Color  string
	IsPaid bool
}

// LeaveTypes is the reference list of leave type codes the unit uses.
var LeaveTypes = []LeaveTypeConfig{
	{Code: "ANL", Name: "Annual Leave", Color: "#3B82F6", IsPaid: true},
	{Code: "SICK", Name: "Sick Leave", Color: "#EF4444", IsPaid: true},
	{Code: "AOL", Name: "Absence Without Leave", Color: "#1F2937", IsPaid: false},
	{Code: "FR", Name: "Family Responsibility", Color: "#10B981", IsPaid: true},
	{Code: "TRN", Name: "Training Leave", Color: "#F59E0B", IsPaid: true},
	{Code: "COMP", Name: "Compassionate Leave", Color: "#8B5CF6", IsPaid: true},
	{Code: "MAT", Name: "Maternity/Paternity", Color: "#EC4899", IsPaid: true},
	{Code: "SUS", Name: "Suspension", Color: "#6B7280", IsPaid: false},
}

// LeaveTypeName resolves a code to its display name, falling back to the
// code itself for unknown values.
func LeaveTypeName(code string) string {
	for _, lt := range LeaveTypes {
		if lt.Code == code {
			return lt.Name
		}
	}
	return code
}

// Ranks is the rank ladder used by the unit, junior to senior.
var Ranks = []string{
	"Constable",
	"Sergeant",
	"Inspector",
	"Senior Inspector",
	"Superintendent",
	"Senior Superintendent",
	"Deputy Head",
	"Head",
}

// SeedUser is a bootstrap account created by the seeder.
type SeedUser struct {
	Email string
	Name  string
	Role  user.Role
}

var SeedUsers = []SeedUser{
	{Email: "admin@ethekwini.gov.za", Name: "System Administrator", Role: user.RoleSuperAdmin},
	{Email: "hr@ethekwini.gov.za", Name: "HR Administrator", Role: user.RoleHRAdmin},
}

// SeedOfficer is a sample roster entry created by the seeder.
type SeedOfficer struct {
	AONumber      string
	PCNumber      string
	FirstName     string
	LastName      string
	Rank          string
	Station       string
	ContactNumber string
	Email         string
	DateOfJoining string
}

var SeedOfficers = []SeedOfficer{
	{
		AONumber: "AO001234", PCNumber: "PC567890",
		FirstName: "John", LastName: "Dlamini",
		Rank: "Constable", Station: "Durban Central",
		ContactNumber: "0821234567", Email: "john.d@example.com",
		DateOfJoining: "2020-03-15",
	},
	{
		AONumber: "AO001235", PCNumber: "PC567891",
		FirstName: "Thandi", LastName: "Nkosi",
		Rank: "Sergeant", Station: "Mayville",
		ContactNumber: "0831234568", Email: "thandi.n@example.com",
		DateOfJoining: "2018-07-22",
	},
}
