package solver

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/jmylchreest/substance/internal/colour"
)

// MaxPermutationTiers bounds AssignPermutation. The search is factorial in
// the number of tiers; past this size it needs a proper assignment-problem
// solver (Hungarian algorithm) instead.
const MaxPermutationTiers = 6

// Tier is a named hue slot. Only the hue takes part in assignment.
type Tier struct {
	Name string
	Hue  float64
}

// Target is something to be matched to a tier. Cost scores a candidate tier
// hue; lower is better and costs must not be negative.
type Target struct {
	Name string
	Cost func(hue float64) float64
}

// RangeTarget scores a hue by its absolute deviation from the centre of r.
func RangeTarget(r HueRange) Target {
	return Target{Name: r.Name, Cost: r.Cost}
}

// ColorTarget scores a hue by the squared OKLab distance between anchor and
// anchor rotated to that hue.
func ColorTarget(name string, anchor colour.OKLrch) Target {
	lab := anchor.OKLab()
	return Target{
		Name: name,
		Cost: func(hue float64) float64 {
			d := anchor.WithH(hue).OKLab().DistanceOK(lab)
			return d * d
		},
	}
}

// Match is one target placed on one tier.
type Match struct {
	Target    string
	Tier      string
	TierIndex int
	Cost      float64
}

// Assignment is the solution of an assignment problem. Matches follow the
// order of the targets passed in.
type Assignment struct {
	Matches []Match
	Cost    float64
}

// TierFor returns the index of the tier a target was matched to.
func (a Assignment) TierFor(target string) (int, bool) {
	m, ok := lo.Find(a.Matches, func(m Match) bool { return m.Target == target })
	return m.TierIndex, ok
}

// Map returns target name to tier name.
func (a Assignment) Map() map[string]string {
	out := make(map[string]string, len(a.Matches))
	for _, m := range a.Matches {
		out[m.Target] = m.Tier
	}
	return out
}

func newAssignment(targets []Target, tiers []Tier, picks []int) Assignment {
	matches := lo.Map(targets, func(t Target, i int) Match {
		j := picks[i]
		return Match{
			Target:    t.Name,
			Tier:      tiers[j].Name,
			TierIndex: j,
			Cost:      t.Cost(tiers[j].Hue),
		}
	})
	return Assignment{
		Matches: matches,
		Cost:    lo.SumBy(matches, func(m Match) float64 { return m.Cost }),
	}
}

func validate(targets []Target, tiers []Tier) error {
	if len(targets) > len(tiers) {
		return fmt.Errorf("%w: %d targets for %d tiers", ErrInvalidTargets, len(targets), len(tiers))
	}

	targetNames := lo.Map(targets, func(t Target, _ int) string { return t.Name })
	tierNames := lo.Map(tiers, func(t Tier, _ int) string { return t.Name })
	for _, set := range []struct {
		kind  string
		names []string
	}{{"target", targetNames}, {"tier", tierNames}} {
		if lo.Contains(set.names, "") {
			return fmt.Errorf("%w: empty %s name", ErrInvalidTargets, set.kind)
		}
		if dups := lo.FindDuplicates(set.names); len(dups) > 0 {
			return fmt.Errorf("%w: duplicate %s name %q", ErrInvalidTargets, set.kind, dups[0])
		}
	}

	for _, t := range targets {
		if t.Cost == nil {
			return fmt.Errorf("%w: target %q has no cost function", ErrInvalidTargets, t.Name)
		}
	}
	return nil
}

// AssignPermutation finds the injective target to tier map with the lowest
// total cost by exhaustive search. Tiers are filled in order, each taking
// the unused targets in order before it is left empty, and the first
// minimum wins. Ties therefore resolve the same way on every run, in
// favour of the earlier target on the earlier tier.
func AssignPermutation(targets []Target, tiers []Tier) (Assignment, error) {
	if err := validate(targets, tiers); err != nil {
		return Assignment{}, err
	}
	if len(tiers) > MaxPermutationTiers {
		return Assignment{}, fmt.Errorf("%w: permutation search supports at most %d tiers, got %d",
			ErrInvalidTargets, MaxPermutationTiers, len(tiers))
	}

	// costs[i][j] is the cost of target i on tier j.
	costs := make([][]float64, len(targets))
	for i, t := range targets {
		costs[i] = lo.Map(tiers, func(tier Tier, _ int) float64 { return t.Cost(tier.Hue) })
	}

	var (
		best     = math.Inf(1)
		bestPick = make([]int, len(targets))
		found    bool
		pick     = make([]int, len(targets))
		used     = make([]bool, len(targets))
	)

	var search func(j, placed int, partial float64)
	search = func(j, placed int, partial float64) {
		if partial >= best {
			return
		}
		if placed == len(targets) {
			best = partial
			copy(bestPick, pick)
			found = true
			return
		}
		if len(tiers)-j < len(targets)-placed {
			return
		}
		for i := range targets {
			if used[i] {
				continue
			}
			used[i] = true
			pick[i] = j
			search(j+1, placed+1, partial+costs[i][j])
			used[i] = false
		}
		// Leave tier j empty.
		search(j+1, placed, partial)
	}
	search(0, 0, 0)

	if !found {
		// Only reachable when every cost is +Inf or NaN.
		return Assignment{}, fmt.Errorf("%w: no finite assignment", ErrInvalidTargets)
	}
	return newAssignment(targets, tiers, bestPick), nil
}
