package solver

import (
	"math"

	"github.com/samber/lo"
)

// AssignNearest places every target on its nearest tier and then repairs
// collisions. Targets that share a nearest tier ("overmatched") are rotated
// over the union of overmatched and unclaimed tiers; the cheapest rotation
// wins, first minimum on ties. Targets without a collision keep their
// nearest tier.
//
// Unlike AssignPermutation the result is not guaranteed optimal, but the
// work is linear in the number of rotations rather than factorial.
func AssignNearest(targets []Target, tiers []Tier) (Assignment, error) {
	if err := validate(targets, tiers); err != nil {
		return Assignment{}, err
	}

	picks := lo.Map(targets, func(t Target, _ int) int {
		return nearestTier(t, tiers)
	})

	claims := make([]int, len(tiers))
	for _, j := range picks {
		claims[j]++
	}

	// Overmatched and unmatched tiers, in index order.
	var candidates []int
	for j, n := range claims {
		if n != 1 {
			candidates = append(candidates, j)
		}
	}

	conflicted := lo.Filter(lo.Range(len(targets)), func(i int, _ int) bool {
		return claims[picks[i]] > 1
	})
	if len(conflicted) == 0 {
		return newAssignment(targets, tiers, picks), nil
	}

	m := len(candidates)
	best, bestShift := math.Inf(1), 0
	for shift := range m {
		var cost float64
		for k, i := range conflicted {
			cost += targets[i].Cost(tiers[candidates[(k+shift)%m]].Hue)
		}
		if cost < best {
			best, bestShift = cost, shift
		}
	}

	for k, i := range conflicted {
		picks[i] = candidates[(k+bestShift)%m]
	}
	return newAssignment(targets, tiers, picks), nil
}

// nearestTier returns the index of the cheapest tier for t, the lowest
// index on ties.
func nearestTier(t Target, tiers []Tier) int {
	return lo.MinBy(lo.Range(len(tiers)), func(a, b int) bool {
		return t.Cost(tiers[a].Hue) < t.Cost(tiers[b].Hue)
	})
}
