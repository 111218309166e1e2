package recipe

import (
	"container/heap"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/inventory"
)

// Substitute is one reachable replacement for an item, with the minimum
// cumulative penalty of getting there.
type Substitute struct {
	Item    inventory.ItemIdentity
	Penalty float64
}

// SubstitutionGraph is a weighted directed acyclic graph of ingredient
// substitutes. An edge A -> B means "if you need A, you can use B" at the
// given quality penalty. Acyclicity is enforced on insertion, so the
// shortest-path search below always terminates.
type SubstitutionGraph struct {
	adj map[inventory.Key][]edge
	// identities remembers one ItemIdentity per key so query results can
	// return full identities, not just keys.
	identities map[inventory.Key]inventory.ItemIdentity
}

type edge struct {
	to      inventory.Key
	penalty float64
}

// NewSubstitutionGraph returns an empty graph.
func NewSubstitutionGraph() *SubstitutionGraph {
	return &SubstitutionGraph{
		adj:        make(map[inventory.Key][]edge),
		identities: make(map[inventory.Key]inventory.ItemIdentity),
	}
}

// AddSubstitution inserts or updates the edge original -> substitute.
// Self-edges are a no-op. Negative penalties are rejected. An edge whose
// reverse path already exists is rejected with an InvalidState failure,
// keeping the graph a DAG; the graph is unchanged after a rejected call.
func (g *SubstitutionGraph) AddSubstitution(original, substitute inventory.ItemIdentity, penalty float64) error {
	if penalty < 0 {
		return fault.Contract("substitution penalty must be non-negative, got %g", penalty)
	}
	origKey, subKey := original.Key(), substitute.Key()
	if origKey == subKey {
		return nil
	}

	if g.pathExists(subKey, origKey) {
		return fault.Invalid("cycle detected: %s already leads to %s", substitute.FullName(), original.FullName())
	}

	g.identities[origKey] = original
	g.identities[subKey] = substitute

	for i, e := range g.adj[origKey] {
		if e.to == subKey {
			g.adj[origKey][i].penalty = penalty
			return nil
		}
	}
	g.adj[origKey] = append(g.adj[origKey], edge{to: subKey, penalty: penalty})
	return nil
}

// pathExists reports whether end is reachable from start.
func (g *SubstitutionGraph) pathExists(start, end inventory.Key) bool {
	visited := make(map[inventory.Key]bool)
	stack := []inventory.Key{start}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr == end {
			return true
		}
		if visited[curr] {
			continue
		}
		visited[curr] = true
		for _, e := range g.adj[curr] {
			stack = append(stack, e.to)
		}
	}
	return false
}

// pqEntry orders the search frontier by (penalty, insertion sequence).
// The explicit sequence number breaks penalty ties deterministically by
// discovery order instead of comparing domain values.
type pqEntry struct {
	penalty float64
	seq     uint64
	key     inventory.Key
}

type priorityQueue []pqEntry

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].penalty != pq[j].penalty {
		return pq[i].penalty < pq[j].penalty
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)        { *pq = append(*pq, x.(pqEntry)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Substitutes returns every item reachable from the given one, with the
// minimum cumulative penalty, in ascending penalty order. The origin
// itself is excluded. Edge weights are non-negative so Dijkstra applies.
func (g *SubstitutionGraph) Substitutes(item inventory.ItemIdentity) []Substitute {
	start := item.Key()

	var seq uint64
	pq := priorityQueue{{penalty: 0, seq: seq, key: start}}
	heap.Init(&pq)

	minPenalty := map[inventory.Key]float64{start: 0}
	var result []Substitute

	for pq.Len() > 0 {
		curr := heap.Pop(&pq).(pqEntry)

		if best, ok := minPenalty[curr.key]; ok && curr.penalty > best {
			continue
		}

		if curr.key != start {
			result = append(result, Substitute{Item: g.identities[curr.key], Penalty: curr.penalty})
		}

		for _, e := range g.adj[curr.key] {
			next := curr.penalty + e.penalty
			if best, ok := minPenalty[e.to]; !ok || next < best {
				minPenalty[e.to] = next
				seq++
				heap.Push(&pq, pqEntry{penalty: next, seq: seq, key: e.to})
			}
		}
	}
	return result
}

// substitutionFile is the on-disk YAML shape for substitution rules.
type substitutionFile struct {
	Substitutions []substitutionYAML `yaml:"substitutions"`
}

type substitutionYAML struct {
	Original   itemYAML `yaml:"original"`
	Substitute itemYAML `yaml:"substitute"`
	Penalty    float64  `yaml:"penalty"`
}

type itemYAML struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	Brand   string `yaml:"brand"`
}

func (iy itemYAML) toIdentity() (inventory.ItemIdentity, error) {
	return inventory.NewItemIdentity(inventory.CanonicalName(iy.Name), iy.Variant, iy.Brand, 1.0)
}

// LoadRules reads substitution rules from a YAML file into a fresh graph.
// A rule that would introduce a cycle fails the whole load.
func LoadRules(path string) (*SubstitutionGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "recipe: read substitution rules %s", path)
	}

	var file substitutionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrapf(err, "recipe: parse substitution rules %s", path)
	}

	graph := NewSubstitutionGraph()
	for _, sy := range file.Substitutions {
		orig, err := sy.Original.toIdentity()
		if err != nil {
			return nil, eris.Wrap(err, "recipe: substitution original")
		}
		sub, err := sy.Substitute.toIdentity()
		if err != nil {
			return nil, eris.Wrap(err, "recipe: substitution substitute")
		}
		if err := graph.AddSubstitution(orig, sub, sy.Penalty); err != nil {
			return nil, eris.Wrapf(err, "recipe: rule %s -> %s", orig.FullName(), sub.FullName())
		}
	}
	return graph, nil
}
