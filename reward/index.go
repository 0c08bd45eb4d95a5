package reward

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valveplan/core"
)

// MaxScored is the largest number of scored locations a Mask can encode.
const MaxScored = 63

var (
	// ErrGraphNil is returned when NewIndex receives a nil graph.
	ErrGraphNil = errors.New("reward: graph is nil")

	// ErrTooManyScored is returned when more than MaxScored locations have a positive rate.
	ErrTooManyScored = errors.New("reward: too many scored locations for mask width")
)

// Scored is a location with a positive rate and its assigned bit.
type Scored struct {
	ID   string
	Node int  // dense index into the distance matrix
	Bit  uint // position in Mask
	Rate int
}

// Index maps locations to dense indices and scored locations to bits.
type Index struct {
	// IDs[i] is the location with dense index i.
	IDs []string

	// Node is the inverse of IDs.
	Node map[string]int

	// Scored lists the reward-bearing locations in bit order.
	Scored []Scored
}

// NewIndex builds the Index for g. Complexity: O(V).
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k := g.ScoredCount(); k > MaxScored {
		return nil, fmt.Errorf("NewIndex: %d scored, max %d: %w", k, MaxScored, ErrTooManyScored)
	}

	ids := g.IDs()
	idx := &Index{
		IDs:  ids,
		Node: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		idx.Node[id] = i
		rate, err := g.Rate(id)
		if err != nil {
			return nil, fmt.Errorf("NewIndex: %w", err)
		}
		if rate > 0 {
			idx.Scored = append(idx.Scored, Scored{
				ID:   id,
				Node: i,
				Bit:  uint(len(idx.Scored)),
				Rate: rate,
			})
		}
	}

	return idx, nil
}

// Len returns the number of scored locations (K).
func (x *Index) Len() int { return len(x.Scored) }

// Full returns the mask with every scored location activated.
func (x *Index) Full() Mask {
	if len(x.Scored) == 0 {
		return 0
	}

	return Mask(1)<<uint(len(x.Scored)) - 1
}

// Lookup returns the Scored entry for id.
func (x *Index) Lookup(id string) (Scored, bool) {
	n, ok := x.Node[id]
	if !ok {
		return Scored{}, false
	}
	for _, s := range x.Scored {
		if s.Node == n {
			return s, true
		}
	}

	return Scored{}, false
}

// Names returns the IDs of the locations activated in m, in bit order.
// Bits beyond Len() are ignored.
func (x *Index) Names(m Mask) []string {
	out := make([]string, 0, m.Count())
	for _, b := range m.Bits() {
		if int(b) < len(x.Scored) {
			out = append(out, x.Scored[b].ID)
		}
	}

	return out
}
