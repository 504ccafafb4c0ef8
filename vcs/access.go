package vcs

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/pkg/errors"
)

// accessModel is the casbin model backing permission checks: permissions are
// granted per collaborator, the role grouping records which role the grant
// came from.
const accessModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act
`

// RolePermissions is the catalogue of known roles and the permissions each
// role may grant.  A grant attaches a subset of its role's set to one
// collaborator.
var RolePermissions = map[string][]string{
	"admin":      {"merge", "pull", "push"},
	"maintainer": {"merge", "push"},
	"developer":  {"push"},
	"guest":      {"pull"},
}

// ValidRoles lists the role catalogue alphabetically.
func ValidRoles() []string {
	roles := make([]string, 0, len(RolePermissions))
	for r := range RolePermissions {
		roles = append(roles, r)
	}
	sort.Strings(roles)
	return roles
}

// RoleGrant is the active role record of one collaborator.  Each
// collaborator has at most one; permission checks always resolve through it.
type RoleGrant struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// AccessControl owns the collaborator -> role -> permission mappings.  The
// grants map is the serialisable source of truth; the casbin enforcer is
// rebuilt from it and answers every check.
type AccessControl struct {
	Grants map[string]*RoleGrant `json:"grants"`

	enforcer *casbin.Enforcer
}

func newAccessControl() *AccessControl {
	ac := &AccessControl{Grants: map[string]*RoleGrant{}}
	ac.rebuild()
	return ac
}

// rebuild constructs a fresh in-memory enforcer from the grants.  The model
// is a compile-time constant, so failures here are programmer errors and the
// enforcer is simply left nil (every check then denies).
func (ac *AccessControl) rebuild() {
	m, err := model.NewModelFromString(accessModel)
	if err != nil {
		return
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return
	}
	for _, g := range ac.Grants {
		_, _ = e.AddGroupingPolicy(g.Email, "role:"+g.Role)
		for _, p := range g.Permissions {
			_, _ = e.AddPolicy(g.Email, p)
		}
	}
	ac.enforcer = e
}

// UnmarshalJSON restores the grants and rebuilds the enforcer from them.
func (ac *AccessControl) UnmarshalJSON(data []byte) error {
	type plain AccessControl
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	ac.Grants = p.Grants
	if ac.Grants == nil {
		ac.Grants = map[string]*RoleGrant{}
	}
	ac.rebuild()
	return nil
}

// validate checks the role against the catalogue and the requested
// permissions against what the role may grant.
func validate(role string, perms []string) error {
	allowed, ok := RolePermissions[role]
	if !ok {
		return errors.Wrapf(ErrUnknownRole, "role '%s'", role)
	}
	for _, p := range perms {
		found := false
		for _, a := range allowed {
			if p == a {
				found = true
				break
			}
		}
		if !found {
			return errors.Wrapf(ErrInvalidPermission, "permission '%s' for role '%s'", p, role)
		}
	}
	return nil
}

// grant inserts or replaces the role record for an email.  Emails are
// case-insensitive keys.
func (ac *AccessControl) grant(email, role string, perms []string) error {
	if err := validate(role, perms); err != nil {
		return err
	}
	email = strings.ToLower(email)
	sorted := append([]string(nil), perms...)
	sort.Strings(sorted)
	ac.Grants[email] = &RoleGrant{Email: email, Role: role, Permissions: sorted}
	ac.rebuild()
	return nil
}

// update changes the role of an existing grant and adds permissions to it.
// Unlike grant it never drops permissions already held.
func (ac *AccessControl) update(email, role string, addPerms []string) error {
	if err := validate(role, addPerms); err != nil {
		return err
	}
	email = strings.ToLower(email)
	g, ok := ac.Grants[email]
	if !ok {
		return errors.Wrapf(ErrCollaboratorNotFound, "'%s' has no role", email)
	}
	g.Role = role
	for _, p := range addPerms {
		have := false
		for _, q := range g.Permissions {
			if p == q {
				have = true
				break
			}
		}
		if !have {
			g.Permissions = append(g.Permissions, p)
		}
	}
	sort.Strings(g.Permissions)
	ac.rebuild()
	return nil
}

// revoke removes the grant for an email.
func (ac *AccessControl) revoke(email string) error {
	email = strings.ToLower(email)
	if _, ok := ac.Grants[email]; !ok {
		return errors.Wrapf(ErrCollaboratorNotFound, "'%s' has no role", email)
	}
	delete(ac.Grants, email)
	ac.rebuild()
	return nil
}

// check reports whether the email holds the permission.  Unknown emails have
// no implicit access: the answer is false, never an error.
func (ac *AccessControl) check(email, permission string) bool {
	if ac.enforcer == nil {
		return false
	}
	ok, err := ac.enforcer.Enforce(strings.ToLower(email), permission)
	return err == nil && ok
}

// show returns a copy of the grant for an email.
func (ac *AccessControl) show(email string) (RoleGrant, error) {
	g, ok := ac.Grants[strings.ToLower(email)]
	if !ok {
		return RoleGrant{}, errors.Wrapf(ErrCollaboratorNotFound, "'%s' has no role", email)
	}
	return *g, nil
}

// list returns copies of all grants ordered by email.
func (ac *AccessControl) list() []RoleGrant {
	list := make([]RoleGrant, 0, len(ac.Grants))
	for _, g := range ac.Grants {
		list = append(list, *g)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Email < list[j].Email })
	return list
}

// Repository-level wrappers: these take the lock so the ACL shares the same
// single-writer ordering as every other component.

// GrantRole assigns a role with a permission subset to a collaborator.
func (r *Repository) GrantRole(email, role string, permissions []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Access.grant(email, role, permissions)
}

// UpdateRole changes an existing collaborator's role and adds permissions.
func (r *Repository) UpdateRole(email, role string, addPermissions []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Access.update(email, role, addPermissions)
}

// RevokeRole removes a collaborator's role record.
func (r *Repository) RevokeRole(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Access.revoke(email)
}

// CheckPermission reports whether the email holds the permission.
func (r *Repository) CheckPermission(email, permission string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Access.check(email, permission)
}

// ShowRole returns the grant for an email.
func (r *Repository) ShowRole(email string) (RoleGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Access.show(email)
}

// ListRoles returns all grants ordered by email.
func (r *Repository) ListRoles() []RoleGrant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Access.list()
}
