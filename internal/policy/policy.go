// Package policy is the single authorization table for the API. Every
// handler consults Allows through the role-gate middleware instead of
// comparing role strings inline.
package policy

// Role is the opaque role claim supplied by the external identity provider.
// Anything outside the known set behaves like RoleNone.
type Role string

const (
	RoleNone   Role = "none"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
	RoleMaster Role = "master"
)

// Operation names an API action subject to the policy.
type Operation string

const (
	OpListProducts    Operation = "product:list"
	OpListCategories  Operation = "category:list"
	OpListInventory   Operation = "inventory:list"
	OpViewDashboard   Operation = "dashboard:view"
	OpCreateProduct   Operation = "product:create"
	OpCreateCategory  Operation = "category:create"
	OpCreateInventory Operation = "inventory:create"
)

// writeRules maps each mutating operation to the exact role it requires.
// Roles are not hierarchical: master does not imply admin and vice versa.
var writeRules = map[Operation]Role{
	OpCreateProduct:   RoleAdmin,
	OpCreateCategory:  RoleAdmin,
	OpCreateInventory: RoleMaster,
}

// Normalize maps a raw role claim to a Role. Missing claims become RoleNone,
// which is denied for every write.
func Normalize(raw string) Role {
	if raw == "" {
		return RoleNone
	}
	return Role(raw)
}

// Allows reports whether a caller with the given role may perform op. It is
// total: any (role, operation) pair yields a decision. Read operations are
// open to every authenticated caller; authentication itself is enforced
// upstream by the identity middleware.
func Allows(role Role, op Operation) bool {
	required, gated := writeRules[op]
	if !gated {
		return true
	}
	return role == required
}
