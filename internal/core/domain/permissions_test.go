package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemAdminAllowedEverywhere(t *testing.T) {
	for op := range permittedRoles {
		assert.True(t, Allowed(RoleSystemAdmin, op), "admin should be allowed %s", op)
	}
}

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		role Role
		op   Operation
		want bool
	}{
		{RoleParkManager, OpViewUserDirectory, true},
		{RoleParkManager, OpManageUsers, false},
		{RoleMonitor, OpManageUsers, false},

		{RoleMonitor, OpWriteBiodiversity, true},
		{RoleAnalyst, OpWriteBiodiversity, true},
		{RoleTechnician, OpWriteBiodiversity, false},
		{RoleTechnician, OpManageDevices, true},

		{RoleTechnician, OpWriteEnvironment, true},
		{RoleVisitorManager, OpWriteEnvironment, false},

		{RoleVisitorManager, OpManageVisitors, true},
		{RoleVisitor, OpManageVisitors, false},
		{RoleVisitor, OpCancelReservation, true},
		{RoleParkManager, OpManageTrafficControl, true},

		{RoleEnforcementOfficer, OpHandleCase, true},
		{RoleEnforcementOfficer, OpDispatchWorkflow, true},
		{RoleMonitor, OpHandleCase, false},

		{RoleResearcher, OpWriteResearch, true},
		{RoleEnforcementOfficer, OpWriteResearch, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allowed(tc.role, tc.op), "%s on %s", tc.role, tc.op)
	}
}

func TestOwnedBy(t *testing.T) {
	assert.True(t, OwnedBy(RoleSystemAdmin, "U001", "U002"))
	assert.True(t, OwnedBy(RoleResearcher, "U001", "U001"))
	assert.False(t, OwnedBy(RoleResearcher, "U001", "U002"))
	assert.False(t, OwnedBy(RoleResearcher, "U001", ""))
}

func TestRoleValid(t *testing.T) {
	for _, role := range Roles {
		assert.True(t, role.Valid())
	}
	assert.False(t, Role("warlord").Valid())
	assert.False(t, Role("").Valid())
}
