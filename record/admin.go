package record

import (
	"sort"
	"strings"
)

// Role identifies an administrative tier.
type Role string

// Roles.
const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// adminPermissions is the fixed permission vocabulary granted to the
// admin role. Process-wide constant; superadmins bypass it entirely.
var adminPermissions = map[string]struct{}{
	"read":         {},
	"write":        {},
	"delete":       {},
	"view_reports": {},
	"manage_users": {},
}

// AdminPermissions returns a sorted copy of the fixed permission set
// granted to the admin role.
func AdminPermissions() []string {
	perms := make([]string, 0, len(adminPermissions))
	for p := range adminPermissions {
		perms = append(perms, p)
	}
	sort.Strings(perms)
	return perms
}

// Admin extends Account with an administrative role. All Account and
// Identity rules continue to apply to the inherited fields.
type Admin struct {
	Account

	role Role
}

// NewAdmin validates all six fields and returns the record, or a
// *ValidationError listing every violated constraint.
func NewAdmin(email, firstName, lastName, password string, age int, role Role) (Admin, error) {
	acct, errs := buildAccount(email, firstName, lastName, password, age)
	ad := Admin{Account: acct}

	role = Role(strings.TrimSpace(string(role)))
	if fe, bad := checkField(FieldRole, roleRules, string(role)); bad {
		errs = append(errs, fe)
	} else {
		ad.role = role
	}

	if err := errs.err(); err != nil {
		return Admin{}, err
	}
	return ad, nil
}

// NewAdminFrom extends an already validated Account with a role.
func NewAdminFrom(a Account, role Role) (Admin, error) {
	return NewAdmin(a.email, a.firstName, a.lastName, a.password, a.age, role)
}

// Role returns the administrative role.
func (a *Admin) Role() Role { return a.role }

// SetRole replaces the role, re-running the closed-enumeration check.
// On failure the record is unchanged.
func (a *Admin) SetRole(role Role) error {
	role = Role(strings.TrimSpace(string(role)))
	if fe, bad := checkField(FieldRole, roleRules, string(role)); bad {
		return singleErr(fe)
	}
	a.role = role
	return nil
}

// Set assigns a field by name, covering the Account and Identity
// fields as well. The role is assigned from its string value.
func (a *Admin) Set(field string, value any) error {
	if field == FieldRole {
		switch v := value.(type) {
		case Role:
			return a.SetRole(v)
		case string:
			return a.SetRole(Role(v))
		}
		return singleErr(typeErr(field, "must be a string"))
	}
	return a.Account.Set(field, value)
}

// HasPermission reports whether the admin's role grants the given
// permission. Superadmins are granted everything, including strings
// outside the known vocabulary; admins are granted exactly the fixed
// set. Never fails, regardless of input.
func (a *Admin) HasPermission(permission string) bool {
	if a.role == RoleSuperAdmin {
		return true
	}
	_, ok := adminPermissions[permission]
	return ok
}
