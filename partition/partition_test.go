package partition

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func groupOf(t *testing.T, groups [][]string, name string) int {
	t.Helper()
	for g, members := range groups {
		if slices.Contains(members, name) {
			return g
		}
	}
	t.Fatalf("%s not placed in any group", name)
	return -1
}

func TestPartition_CoversEveryPersonExactlyOnce(t *testing.T) {
	req := require.New(t)
	people := []string{"Ada", "Ben", "Cleo", "Dan", "Eve", "Finn", "Gus", "Hana"}

	for seed := int64(0); seed < 10; seed++ {
		groups, err := Partition(people, 3,
			[][]string{{"Ada", "Ben"}},
			[][]string{{"Cleo", "Dan"}},
			newRNG(seed))
		req.NoError(err)
		req.Len(groups, 3)

		var all []string
		for _, g := range groups {
			req.True(slices.IsSorted(g))
			all = append(all, g...)
		}
		slices.Sort(all)
		want := slices.Clone(people)
		slices.Sort(want)
		req.Equal(want, all)
	}
}

func TestPartition_TogetherMembersShareGroup(t *testing.T) {
	req := require.New(t)
	people := []string{"A", "B", "C", "D"}

	for seed := int64(0); seed < 25; seed++ {
		groups, err := Partition(people, 2, nil, [][]string{{"A", "B"}}, newRNG(seed))
		req.NoError(err)
		req.Len(groups, 2)
		req.Equal(groupOf(t, groups, "A"), groupOf(t, groups, "B"))
	}
}

func TestPartition_TogetherIsTransitive(t *testing.T) {
	req := require.New(t)
	people := []string{"A", "B", "C", "D", "E", "F"}

	// {A,B} and {B,C} merge into one unit of three.
	groups, err := Partition(people, 2, nil, [][]string{{"A", "B"}, {"B", "C"}}, newRNG(7))
	req.NoError(err)
	g := groupOf(t, groups, "A")
	req.Equal(g, groupOf(t, groups, "B"))
	req.Equal(g, groupOf(t, groups, "C"))
}

func TestPartition_ApartMembersSplit(t *testing.T) {
	req := require.New(t)

	for seed := int64(0); seed < 25; seed++ {
		groups, err := Partition([]string{"A", "B"}, 2, [][]string{{"A", "B"}}, nil, newRNG(seed))
		req.NoError(err)
		req.Len(groups, 2)
		req.ElementsMatch([][]string{{"A"}, {"B"}}, groups)
	}
}

func TestPartition_ApartInvariantHolds(t *testing.T) {
	req := require.New(t)
	people := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	apart := [][]string{{"A", "B", "C"}, {"D", "E"}}

	for seed := int64(0); seed < 25; seed++ {
		groups, err := Partition(people, 3, apart, nil, newRNG(seed))
		req.NoError(err)
		for _, c := range apart {
			for i := range c {
				for j := i + 1; j < len(c); j++ {
					req.NotEqual(groupOf(t, groups, c[i]), groupOf(t, groups, c[j]),
						"%s and %s share a group", c[i], c[j])
				}
			}
		}
	}
}

func TestPartition_ConflictingConstraint(t *testing.T) {
	req := require.New(t)

	_, err := Partition([]string{"A", "B", "C"}, 2,
		[][]string{{"A", "B"}},
		[][]string{{"A", "B"}},
		newRNG(1))

	var conflict *ConflictError
	req.ErrorAs(err, &conflict)
	req.Equal("A", conflict.NameA)
	req.Equal("B", conflict.NameB)
}

func TestPartition_ConflictNamesFollowApartOrder(t *testing.T) {
	req := require.New(t)

	// The apart constraint lists C before A; the report follows that order.
	_, err := Partition([]string{"A", "B", "C"}, 2,
		[][]string{{"C", "B", "A"}},
		[][]string{{"A", "C"}},
		newRNG(1))

	var conflict *ConflictError
	req.ErrorAs(err, &conflict)
	req.Equal("C", conflict.NameA)
	req.Equal("A", conflict.NameB)
}

func TestPartition_OversizedClique(t *testing.T) {
	req := require.New(t)

	_, err := Partition([]string{"A", "B", "C"}, 2, nil, [][]string{{"A", "B", "C"}}, newRNG(1))
	req.ErrorIs(err, ErrOversizedClique)
}

func TestPartition_InsufficientPeople(t *testing.T) {
	req := require.New(t)

	for seed := int64(0); seed < 5; seed++ {
		_, err := Partition([]string{"A"}, 2, nil, nil, newRNG(seed))
		req.ErrorIs(err, ErrInsufficientPeople)
	}
}

func TestPartition_ValidationIgnoresRandomSource(t *testing.T) {
	req := require.New(t)
	people := []string{"A", "B", "C"}
	together := [][]string{{"A", "B"}}
	apart := [][]string{{"A", "B"}}

	_, err1 := Partition(people, 2, apart, together, newRNG(1))
	_, err2 := Partition(people, 2, apart, together, newRNG(99))
	req.Equal(err1, err2)
}

func TestPartition_UnsatisfiableWithinBudget(t *testing.T) {
	req := require.New(t)

	// Three mutually apart singletons cannot fit two groups; the precheck
	// does not catch this, so every attempt fails.
	_, err := Partition([]string{"A", "B", "C"}, 2, [][]string{{"A", "B", "C"}}, nil, newRNG(4))
	req.ErrorIs(err, ErrUnsatisfiable)
}

func TestPartition_FewerUnitsThanGroupsLeavesEmptyGroup(t *testing.T) {
	req := require.New(t)

	// Two units of two, three groups: both fit the ceiling of two, so one
	// group stays empty.
	groups, err := Partition([]string{"A", "B", "C", "D"}, 3, nil,
		[][]string{{"A", "B"}, {"C", "D"}}, newRNG(2))
	req.NoError(err)
	req.Len(groups, 3)

	empty := 0
	for _, g := range groups {
		if len(g) == 0 {
			empty++
			continue
		}
		req.Len(g, 2)
	}
	req.Equal(1, empty)
}

func TestPartition_DeterministicWithSeed(t *testing.T) {
	req := require.New(t)
	people := []string{"Ada", "Ben", "Cleo", "Dan", "Eve", "Finn"}
	apart := [][]string{{"Ada", "Ben"}}
	together := [][]string{{"Cleo", "Dan"}}

	first, err := Partition(people, 3, apart, together, newRNG(42))
	req.NoError(err)
	second, err := Partition(people, 3, apart, together, newRNG(42))
	req.NoError(err)
	req.Equal(first, second)
}

func TestPartition_BalancesGroupSizes(t *testing.T) {
	req := require.New(t)
	people := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

	for seed := int64(0); seed < 10; seed++ {
		groups, err := Partition(people, 3, nil, nil, newRNG(seed))
		req.NoError(err)
		for _, g := range groups {
			req.Len(g, 3)
		}
	}
}

func TestPartition_DoesNotMutateInputs(t *testing.T) {
	req := require.New(t)
	people := []string{"B", "A", "D", "C"}
	apart := [][]string{{"B", "A"}}
	together := [][]string{{"D", "C"}}

	_, err := Partition(people, 2, apart, together, newRNG(3))
	req.NoError(err)
	req.Equal([]string{"B", "A", "D", "C"}, people)
	req.Equal([][]string{{"B", "A"}}, apart)
	req.Equal([][]string{{"D", "C"}}, together)
}
