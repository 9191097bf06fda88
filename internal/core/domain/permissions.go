package domain

// Operation names a protected, mutating operation. Reads are open to any
// authenticated role unless explicitly listed here (user management is).
type Operation string

const (
	OpManageUsers Operation = "system.users.manage"
	OpManageAreas Operation = "system.areas.manage"

	OpWriteBiodiversity Operation = "biodiversity.write"
	OpManageDevices     Operation = "biodiversity.devices.manage"

	OpWriteEnvironment Operation = "environment.write"

	OpManageVisitors       Operation = "visitor.manage"
	OpCancelReservation    Operation = "visitor.reservations.cancel"
	OpManageTrafficControl Operation = "visitor.traffic.manage"

	OpWriteEnforcement  Operation = "enforcement.write"
	OpHandleCase        Operation = "enforcement.cases.handle"
	OpDispatchWorkflow  Operation = "enforcement.dispatches.transition"
	OpViewUserDirectory Operation = "system.users.view"

	OpWriteResearch Operation = "research.write"
)

// permittedRoles is the static capability table: operation -> roles allowed
// to perform it. The system admin is implicitly permitted everywhere and is
// therefore not listed.
var permittedRoles = map[Operation][]Role{
	OpManageUsers:       {},
	OpViewUserDirectory: {RoleParkManager},
	OpManageAreas:       {RoleParkManager},

	OpWriteBiodiversity: {RoleMonitor, RoleAnalyst},
	OpManageDevices:     {RoleMonitor, RoleTechnician},

	OpWriteEnvironment: {RoleMonitor, RoleAnalyst, RoleTechnician},

	OpManageVisitors:       {RoleVisitorManager},
	OpCancelReservation:    {RoleVisitorManager, RoleVisitor},
	OpManageTrafficControl: {RoleVisitorManager, RoleParkManager},

	OpWriteEnforcement: {RoleEnforcementOfficer},
	OpHandleCase:       {RoleEnforcementOfficer},
	OpDispatchWorkflow: {RoleEnforcementOfficer},

	OpWriteResearch: {RoleResearcher},
}

// Allowed reports whether a role may perform an operation.
func Allowed(role Role, op Operation) bool {
	if role == RoleSystemAdmin {
		return true
	}
	for _, permitted := range permittedRoles[op] {
		if role == permitted {
			return true
		}
	}
	return false
}

// OwnedBy reports whether a record owner reference grants write access to the
// caller: a record carrying a recorder/collector/enforcer/principal reference
// is writable by its own referenced user or an admin.
func OwnedBy(role Role, callerID, ownerID string) bool {
	if role == RoleSystemAdmin {
		return true
	}
	return ownerID != "" && callerID == ownerID
}
