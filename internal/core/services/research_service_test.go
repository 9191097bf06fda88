package services

import (
	"testing"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanReadAchievement(t *testing.T) {
	cases := []struct {
		name       string
		permission models.SharePermission
		role       domain.Role
		want       bool
	}{
		{"public visitor", models.SharePublic, domain.RoleVisitor, true},
		{"public monitor", models.SharePublic, domain.RoleMonitor, true},
		{"internal visitor", models.ShareInternal, domain.RoleVisitor, false},
		{"internal monitor", models.ShareInternal, domain.RoleMonitor, true},
		{"internal technician", models.ShareInternal, domain.RoleTechnician, true},
		{"confidential monitor", models.ShareConfidential, domain.RoleMonitor, false},
		{"confidential analyst", models.ShareConfidential, domain.RoleAnalyst, false},
		{"confidential researcher", models.ShareConfidential, domain.RoleResearcher, true},
		{"confidential park manager", models.ShareConfidential, domain.RoleParkManager, true},
		{"confidential admin", models.ShareConfidential, domain.RoleSystemAdmin, true},
		{"unknown permission", models.SharePermission("secret"), domain.RoleSystemAdmin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanReadAchievement(tc.permission, tc.role))
		})
	}
}
