// Package scheme turns six tier hues, two neutrals and a set of role
// bindings into light and dark palettes.
package scheme

import (
	"fmt"
	"strings"
)

// Role is a semantic slot that resolves to one palette row.
type Role string

// Semantic roles.
const (
	RoleError       Role = "error"
	RoleWarning     Role = "warning"
	RolePositive    Role = "positive"
	RoleLink        Role = "link"
	RoleLinkVisited Role = "link_visited"
	RoleActive      Role = "active"
	RoleHighlight   Role = "highlight"
	RoleSelection   Role = "selection"
)

// Syntax highlighting roles.
const (
	RoleKeyword  Role = "keyword"
	RoleType     Role = "type"
	RoleFunction Role = "function"
	RoleValue    Role = "value"
	RoleString   Role = "string"
	RoleVariable Role = "variable"
	RoleMeta     Role = "meta"
)

// Terminal colour roles. term0 and term7 come from the neutrals and are not
// bindable.
const (
	RoleTerm1 Role = "term1"
	RoleTerm2 Role = "term2"
	RoleTerm3 Role = "term3"
	RoleTerm4 Role = "term4"
	RoleTerm5 Role = "term5"
	RoleTerm6 Role = "term6"
)

var allRoles = []Role{
	RoleError, RoleWarning, RolePositive, RoleLink, RoleLinkVisited,
	RoleActive, RoleHighlight, RoleSelection,
	RoleKeyword, RoleType, RoleFunction, RoleValue, RoleString, RoleVariable, RoleMeta,
	RoleTerm1, RoleTerm2, RoleTerm3, RoleTerm4, RoleTerm5, RoleTerm6,
}

// requiredRoles have no default and must be bound by every scheme.
var requiredRoles = []Role{RoleLink, RoleLinkVisited, RoleError, RoleWarning, RolePositive}

// Roles returns every bindable role in display order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// RequiredRoles returns the roles without a default binding.
func RequiredRoles() []Role {
	out := make([]Role, len(requiredRoles))
	copy(out, requiredRoles)
	return out
}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidBinding, s)
	}
	return r, nil
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Title renders the role for swatch labels, e.g. "Link Visited".
func (r Role) Title() string {
	words := strings.Split(string(r), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// termRole returns the role for terminal colour n (1..6).
func termRole(n int) Role {
	return Role(fmt.Sprintf("term%d", n))
}
