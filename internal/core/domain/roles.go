package domain

// Role is the fixed set of labels determining permitted operations.
type Role string

const (
	RoleMonitor            Role = "monitor"
	RoleAnalyst            Role = "analyst"
	RoleVisitor            Role = "visitor"
	RoleVisitorManager     Role = "visitor-manager"
	RoleEnforcementOfficer Role = "enforcement-officer"
	RoleResearcher         Role = "researcher"
	RoleTechnician         Role = "technician"
	RoleParkManager        Role = "park-manager"
	RoleSystemAdmin        Role = "system-admin"
)

// Roles lists every valid role.
var Roles = []Role{
	RoleMonitor,
	RoleAnalyst,
	RoleVisitor,
	RoleVisitorManager,
	RoleEnforcementOfficer,
	RoleResearcher,
	RoleTechnician,
	RoleParkManager,
	RoleSystemAdmin,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}
