// Package partition splits a set of named people into a requested number of
// groups while honoring "must stay apart" and "must stay together"
// constraints. The search is a randomized bounded-retry heuristic, not a
// complete solver.
package partition

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// MaxAttempts bounds the number of randomized packing attempts per call.
const MaxAttempts = 50

var (
	ErrInsufficientPeople = errors.New("fewer people than requested groups")
	ErrOversizedClique    = errors.New("together-bound unit exceeds the group size ceiling")
	ErrUnsatisfiable      = errors.New("no valid grouping found within the attempt budget")
)

// ConflictError reports two people bound by both a together- and an
// apart-constraint.
type ConflictError struct {
	NameA string
	NameB string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s and %s are constrained both together and apart", e.NameA, e.NameB)
}

// Partition distributes people into exactly groupCount groups such that every
// together-constraint's members share a group and no two members of an
// apart-constraint do. Each returned group is sorted by name. Constraint
// members must be drawn from people; unknown names are ignored.
//
// ErrUnsatisfiable means no grouping was found within MaxAttempts randomized
// attempts, not that none exists. Mutually apart units that cannot all fit
// the group count are not detected up front and also surface this way.
func Partition(people []string, groupCount int, apart, together [][]string, rng *rand.Rand) ([][]string, error) {
	if len(people) < groupCount {
		return nil, ErrInsufficientPeople
	}
	if err := findConflict(apart, together); err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(people))
	for i, name := range people {
		idx[name] = i
	}

	uf := newUnionFind(len(people))
	for _, c := range together {
		prev := -1
		for _, name := range c {
			i, ok := idx[name]
			if !ok {
				continue
			}
			if prev >= 0 {
				uf.union(prev, i)
			}
			prev = i
		}
	}
	units := unitsByRoot(uf, len(people))

	ceiling := (len(people) + groupCount - 1) / groupCount
	for _, unit := range units {
		if len(unit) > ceiling {
			return nil, ErrOversizedClique
		}
	}

	apartFor := make([][]int, len(people))
	for _, c := range apart {
		for i := range c {
			a, ok := idx[c[i]]
			if !ok {
				continue
			}
			for j := i + 1; j < len(c); j++ {
				b, ok := idx[c[j]]
				if !ok {
					continue
				}
				apartFor[a] = append(apartFor[a], b)
				apartFor[b] = append(apartFor[b], a)
			}
		}
	}

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		groups, ok := packOnce(len(people), units, groupCount, apartFor, rng)
		if !ok {
			continue
		}
		result := make([][]string, groupCount)
		for g, members := range groups {
			result[g] = make([]string, 0, len(members))
			for _, m := range members {
				result[g] = append(result[g], people[m])
			}
			slices.Sort(result[g])
		}
		return result, nil
	}
	return nil, ErrUnsatisfiable
}

func findConflict(apart, together [][]string) error {
	sets := make([]map[string]bool, len(together))
	for i, c := range together {
		sets[i] = make(map[string]bool, len(c))
		for _, name := range c {
			sets[i][name] = true
		}
	}
	for _, a := range apart {
		for _, set := range sets {
			first := ""
			for _, name := range a {
				if !set[name] {
					continue
				}
				if first == "" {
					first = name
					continue
				}
				return &ConflictError{NameA: first, NameB: name}
			}
		}
	}
	return nil
}

// unitsByRoot groups person indices by union-find root, in first-seen order.
func unitsByRoot(uf *unionFind, n int) [][]int {
	pos := map[int]int{}
	var units [][]int
	for i := 0; i < n; i++ {
		root := uf.find(i)
		p, ok := pos[root]
		if !ok {
			p = len(units)
			pos[root] = p
			units = append(units, nil)
		}
		units[p] = append(units[p], i)
	}
	return units
}

// packOnce runs a single greedy attempt: shuffle units, then place each into
// the least-filled group with no apart-link to its members. Ties between
// equally filled groups go to the lower group index.
func packOnce(n int, units [][]int, groupCount int, apartFor [][]int, rng *rand.Rand) ([][]int, bool) {
	groups := make([][]int, groupCount)
	placed := make([]int, n)
	for i := range placed {
		placed[i] = -1
	}

	candidates := make([]int, groupCount)
	for i := range candidates {
		candidates[i] = i
	}

	for _, ui := range rng.Perm(len(units)) {
		unit := units[ui]
		slices.SortFunc(candidates, func(a, b int) int {
			if d := len(groups[a]) - len(groups[b]); d != 0 {
				return d
			}
			return a - b
		})
		target := -1
		for _, g := range candidates {
			ok := true
			for _, m := range unit {
				for _, partner := range apartFor[m] {
					if placed[partner] == g {
						ok = false
						break
					}
				}
				if !ok {
					break
				}
			}
			if ok {
				target = g
				break
			}
		}
		if target < 0 {
			return nil, false
		}
		for _, m := range unit {
			placed[m] = target
		}
		groups[target] = append(groups[target], unit...)
	}
	return groups, true
}
