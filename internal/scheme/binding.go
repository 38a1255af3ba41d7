package scheme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/substance/internal/colour"
)

// ErrInvalidBinding is returned when a role binding cannot be resolved.
var ErrInvalidBinding = errors.New("invalid role binding")

// TierCount is the number of tiers in every scheme.
const TierCount = 6

// BindingKind says what a Binding points at.
type BindingKind int

const (
	// BindTier binds a role to one of the six tiers.
	BindTier BindingKind = iota
	// BindAlias binds a role to whatever another role is bound to.
	BindAlias
	// BindColor binds a role to a colour of its own.
	BindColor
)

// Binding is the target of a role. The zero value is invalid.
type Binding struct {
	kind  BindingKind
	tier  int
	alias Role
	color colour.OKLrch
}

// TierBinding binds to tier n, counted from 1.
func TierBinding(n int) Binding {
	return Binding{kind: BindTier, tier: n}
}

// RoleAlias binds to the target of another role.
func RoleAlias(r Role) Binding {
	return Binding{kind: BindAlias, alias: r}
}

// ColorBinding binds to an explicit colour. Only its chroma and hue are
// used; every swatch sets its own lightness.
func ColorBinding(c colour.OKLrch) Binding {
	return Binding{kind: BindColor, color: c}
}

// ParseBinding accepts "tierN", a role name or a hex colour.
func ParseBinding(s string) (Binding, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colour.OKLrchFromHex(s)
		if err != nil {
			return Binding{}, fmt.Errorf("%w: %w", ErrInvalidBinding, err)
		}
		return ColorBinding(c), nil
	case strings.HasPrefix(s, "tier"):
		n, err := strconv.Atoi(strings.TrimPrefix(s, "tier"))
		if err != nil {
			return Binding{}, fmt.Errorf("%w: %q is not a tier", ErrInvalidBinding, s)
		}
		return TierBinding(n), nil
	default:
		r, err := ParseRole(s)
		if err != nil {
			return Binding{}, err
		}
		return RoleAlias(r), nil
	}
}

// Kind returns what the binding points at.
func (b Binding) Kind() BindingKind { return b.kind }

// Tier returns the tier number of a BindTier binding.
func (b Binding) Tier() int { return b.tier }

// Alias returns the role of a BindAlias binding.
func (b Binding) Alias() Role { return b.alias }

// Color returns the colour of a BindColor binding.
func (b Binding) Color() colour.OKLrch { return b.color }

func (b Binding) String() string {
	switch b.kind {
	case BindTier:
		return fmt.Sprintf("tier%d", b.tier)
	case BindAlias:
		return string(b.alias)
	case BindColor:
		return b.color.Hex()
	default:
		return "invalid"
	}
}

// DefaultBindings returns the bindings used for roles a scheme leaves out.
// The required roles have no default.
func DefaultBindings() map[Role]Binding {
	return map[Role]Binding{
		RoleSelection: TierBinding(1),
		RoleActive:    TierBinding(2),
		RoleHighlight: RoleAlias(RoleWarning),

		RoleKeyword:  TierBinding(1),
		RoleType:     TierBinding(4),
		RoleFunction: TierBinding(2),
		RoleValue:    TierBinding(6),
		RoleString:   RoleAlias(RolePositive),
		RoleVariable: TierBinding(3),
		RoleMeta:     TierBinding(5),

		RoleTerm1: TierBinding(6),
		RoleTerm2: RoleAlias(RolePositive),
		RoleTerm3: RoleAlias(RoleWarning),
		RoleTerm4: RoleAlias(RoleLink),
		RoleTerm5: RoleAlias(RoleLinkVisited),
		RoleTerm6: TierBinding(4),
	}
}

// resolution maps every role to a palette row. Rows 0..5 are the tiers;
// colour bindings append rows after them.
type resolution struct {
	bindings map[Role]Binding
	rows     map[Role]int
	extra    []colour.OKLrch
	// extraRole names the role that introduced each extra row.
	extraRole []Role
}

// resolve merges bindings over the defaults and resolves every role once.
func resolve(bindings map[Role]Binding) (resolution, error) {
	merged := DefaultBindings()
	for r, b := range bindings {
		if !r.Valid() {
			return resolution{}, fmt.Errorf("%w: unknown role %q", ErrInvalidBinding, r)
		}
		merged[r] = b
	}

	for _, r := range requiredRoles {
		if _, ok := merged[r]; !ok {
			return resolution{}, fmt.Errorf("%w: %s must be bound to one of tier1..tier%d", ErrInvalidBinding, r, TierCount)
		}
	}

	res := resolution{bindings: merged, rows: make(map[Role]int, len(allRoles))}

	// Direct bindings first so aliases can point at them.
	for _, r := range allRoles {
		b := merged[r]
		switch b.kind {
		case BindTier:
			if b.tier < 1 || b.tier > TierCount {
				return resolution{}, fmt.Errorf("%w: %s must correspond to one of tier1..tier%d, got tier%d",
					ErrInvalidBinding, r, TierCount, b.tier)
			}
			res.rows[r] = b.tier - 1
		case BindColor:
			res.rows[r] = TierCount + len(res.extra)
			res.extra = append(res.extra, b.color)
			res.extraRole = append(res.extraRole, r)
		case BindAlias:
		default:
			return resolution{}, fmt.Errorf("%w: %s has an empty binding", ErrInvalidBinding, r)
		}
	}

	for _, r := range allRoles {
		b := merged[r]
		if b.kind != BindAlias {
			continue
		}
		target, ok := merged[b.alias]
		if !ok {
			return resolution{}, fmt.Errorf("%w: %s aliases unknown role %q", ErrInvalidBinding, r, b.alias)
		}
		if target.kind == BindAlias {
			return resolution{}, fmt.Errorf("%w: %s aliases %s, which is itself an alias", ErrInvalidBinding, r, b.alias)
		}
		res.rows[r] = res.rows[b.alias]
	}

	return res, nil
}
