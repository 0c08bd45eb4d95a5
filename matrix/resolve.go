package matrix

import (
	"github.com/katalvlaran/valveplan/core"
)

const opResolve = "Resolve"

// Resolve converts g into its shortest-path table.
// The returned map gives the dense index of each location ID (g.IDs() order).
func Resolve(g *core.Graph) (*Distances, map[string]int, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opResolve, ErrGraphNil)
	}

	ids := g.IDs()
	d, err := NewDistances(len(ids))
	if err != nil {
		return nil, nil, matrixErrorf(opResolve, err)
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Direct edges cost one minute.
	for i, id := range ids {
		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, nil, matrixErrorf(opResolve, err)
		}
		for _, nb := range nbs {
			d.data[i*d.n+index[nb]] = 1
		}
	}

	if err = FloydWarshall(d); err != nil {
		return nil, nil, matrixErrorf(opResolve, err)
	}

	return d, index, nil
}
