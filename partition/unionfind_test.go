package partition

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionFind_SingletonsByDefault(t *testing.T) {
	req := require.New(t)
	uf := newUnionFind(4)
	for i := 0; i < 4; i++ {
		req.Equal(i, uf.find(i))
	}
}

func TestUnionFind_TransitiveConnectivity(t *testing.T) {
	req := require.New(t)
	uf := newUnionFind(6)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.union(4, 5)

	req.Equal(uf.find(0), uf.find(2))
	req.Equal(uf.find(4), uf.find(5))
	req.NotEqual(uf.find(0), uf.find(3))
	req.NotEqual(uf.find(2), uf.find(4))
}

func TestUnitsByRoot_FirstSeenOrder(t *testing.T) {
	req := require.New(t)
	uf := newUnionFind(5)
	uf.union(1, 3)
	uf.union(0, 4)

	units := unitsByRoot(uf, 5)
	req.Equal([][]int{{0, 4}, {1, 3}, {2}}, units)
}
