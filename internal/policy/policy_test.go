package policy_test

import (
	"testing"

	"go-catalog-backend/internal/policy"

	"github.com/stretchr/testify/assert"
)

func TestWriteOperationsRequireExactRole(t *testing.T) {
	cases := []struct {
		role    policy.Role
		op      policy.Operation
		allowed bool
	}{
		{policy.RoleAdmin, policy.OpCreateProduct, true},
		{policy.RoleAdmin, policy.OpCreateCategory, true},
		{policy.RoleAdmin, policy.OpCreateInventory, false},
		{policy.RoleMaster, policy.OpCreateInventory, true},
		{policy.RoleMaster, policy.OpCreateProduct, false},
		{policy.RoleMaster, policy.OpCreateCategory, false},
		{policy.RoleMember, policy.OpCreateProduct, false},
		{policy.RoleMember, policy.OpCreateCategory, false},
		{policy.RoleMember, policy.OpCreateInventory, false},
		{policy.RoleNone, policy.OpCreateProduct, false},
		{policy.RoleNone, policy.OpCreateCategory, false},
		{policy.RoleNone, policy.OpCreateInventory, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, policy.Allows(tc.role, tc.op),
			"role %s, op %s", tc.role, tc.op)
	}
}

func TestReadOperationsOpenToAnyAuthenticatedRole(t *testing.T) {
	reads := []policy.Operation{
		policy.OpListProducts,
		policy.OpListCategories,
		policy.OpListInventory,
		policy.OpViewDashboard,
	}

	for _, op := range reads {
		for _, role := range []policy.Role{policy.RoleMember, policy.RoleAdmin, policy.RoleMaster, policy.Role("viewer")} {
			assert.True(t, policy.Allows(role, op), "role %s, op %s", role, op)
		}
	}
}

func TestUnknownRoleIsTotalNotPanicking(t *testing.T) {
	// The decision function must be total: arbitrary role strings get a
	// decision, never a panic, and are denied every write.
	weird := policy.Normalize("super-duper-admin")
	assert.False(t, policy.Allows(weird, policy.OpCreateProduct))
	assert.False(t, policy.Allows(weird, policy.OpCreateInventory))
}

func TestNormalizeMissingRole(t *testing.T) {
	assert.Equal(t, policy.RoleNone, policy.Normalize(""))
	assert.Equal(t, policy.RoleAdmin, policy.Normalize("admin"))
}
