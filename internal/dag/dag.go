// Package dag provides directed graph operations for constant dependencies.
// It supports cycle detection, topological sorting, and execution levels.
// Every traversal follows node insertion order, so results are deterministic.
package dag

import (
	"fmt"
	"strings"
)

// Node represents a node in the DAG.
type Node struct {
	// ID is the unique identifier (constant name)
	ID string
	// Data holds arbitrary node data
	Data any
}

// Graph represents a directed graph that is expected to be acyclic.
type Graph struct {
	nodes   map[string]*Node
	order   []string            // insertion order
	edges   map[string][]string // parent -> children (dependents)
	parents map[string][]string // child -> parents (dependencies)
}

// CycleError is returned by TopologicalSort and GetExecutionLevels when
// the graph is not acyclic.
type CycleError struct {
	// Residual lists the nodes that could not be ordered, in insertion order.
	Residual []string
	// Cycle is a closed dependency path: each node depends on the next,
	// and the first node is repeated last.
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// NewGraph creates a new empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		edges:   make(map[string][]string),
		parents: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
func (g *Graph) AddNode(id string, data any) {
	if _, exists := g.nodes[id]; !exists {
		g.nodes[id] = &Node{ID: id, Data: data}
		g.order = append(g.order, id)
		g.edges[id] = []string{}
		g.parents[id] = []string{}
	} else {
		// Update data if node already exists
		g.nodes[id].Data = data
	}
}

// AddEdge adds a directed edge from parent to child (child depends on parent).
// Self-loops are accepted and reported as cycles.
func (g *Graph) AddEdge(parentID, childID string) error {
	// Ensure both nodes exist
	if _, exists := g.nodes[parentID]; !exists {
		return fmt.Errorf("parent node %q does not exist", parentID)
	}
	if _, exists := g.nodes[childID]; !exists {
		return fmt.Errorf("child node %q does not exist", childID)
	}

	// Add edge (avoid duplicates)
	if !contains(g.edges[parentID], childID) {
		g.edges[parentID] = append(g.edges[parentID], childID)
	}
	if !contains(g.parents[childID], parentID) {
		g.parents[childID] = append(g.parents[childID], parentID)
	}

	return nil
}

// GetNode returns a node by ID.
func (g *Graph) GetNode(id string) (*Node, bool) {
	node, exists := g.nodes[id]
	return node, exists
}

// GetParents returns the parents (dependencies) of a node.
func (g *Graph) GetParents(id string) []string {
	return g.parents[id]
}

// GetChildren returns the children (dependents) of a node.
func (g *Graph) GetChildren(id string) []string {
	return g.edges[id]
}

// Nodes returns the node IDs in insertion order.
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, children := range g.edges {
		count += len(children)
	}
	return count
}

// HasCycle returns true if the graph contains a cycle, along with the cycle path.
func (g *Graph) HasCycle() (bool, []string) {
	if _, err := g.kahn(); err != nil {
		return true, err.Cycle
	}
	return false, nil
}

// TopologicalSort returns nodes in topological order (dependencies before dependents).
// Among nodes that are ready at the same time, insertion order wins.
// Returns a *CycleError if the graph contains a cycle.
func (g *Graph) TopologicalSort() ([]*Node, error) {
	levels, err := g.kahn()
	if err != nil {
		return nil, err
	}

	result := make([]*Node, 0, len(g.nodes))
	for _, level := range levels {
		for _, id := range level {
			result = append(result, g.nodes[id])
		}
	}
	return result, nil
}

// GetExecutionLevels returns nodes grouped by execution level.
// Nodes at level N only depend on nodes at levels below N.
// Level 0 contains nodes with no dependencies.
func (g *Graph) GetExecutionLevels() ([][]string, error) {
	levels, err := g.kahn()
	if err != nil {
		return nil, err
	}
	return levels, nil
}

// kahn consumes the graph level by level. Nodes left over once no node
// has zero remaining in-degree form the residual set, which always holds a cycle.
func (g *Graph) kahn() ([][]string, *CycleError) {
	indegree := make(map[string]int, len(g.nodes))
	for _, id := range g.order {
		indegree[id] = len(g.parents[id])
	}

	var ready []string
	for _, id := range g.order {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	levels := [][]string{}
	consumed := make(map[string]bool, len(g.nodes))
	for len(ready) > 0 {
		levels = append(levels, ready)
		released := make(map[string]bool)
		for _, id := range ready {
			consumed[id] = true
			for _, child := range g.edges[id] {
				indegree[child]--
				if indegree[child] == 0 {
					released[child] = true
				}
			}
		}
		var next []string
		for _, id := range g.order {
			if released[id] {
				next = append(next, id)
			}
		}
		ready = next
	}

	if len(consumed) == len(g.nodes) {
		return levels, nil
	}

	residual := make([]string, 0, len(g.nodes)-len(consumed))
	for _, id := range g.order {
		if !consumed[id] {
			residual = append(residual, id)
		}
	}
	return nil, &CycleError{Residual: residual, Cycle: g.cycleFrom(residual, consumed)}
}

// cycleFrom walks dependencies inside the residual subgraph, starting at its first
// node, until a node repeats. Every residual node keeps at least one residual parent,
// so the walk always closes. The cycle is rotated to start at its earliest-inserted member.
func (g *Graph) cycleFrom(residual []string, consumed map[string]bool) []string {
	position := make(map[string]int, len(g.order))
	for i, id := range g.order {
		position[id] = i
	}

	seenAt := make(map[string]int)
	var walk []string
	for cur := residual[0]; ; {
		if i, seen := seenAt[cur]; seen {
			walk = walk[i:]
			break
		}
		seenAt[cur] = len(walk)
		walk = append(walk, cur)
		for _, p := range g.parents[cur] {
			if !consumed[p] {
				cur = p
				break
			}
		}
	}

	start := 0
	for i, id := range walk {
		if position[id] < position[walk[start]] {
			start = i
		}
	}
	cycle := make([]string, 0, len(walk)+1)
	cycle = append(cycle, walk[start:]...)
	cycle = append(cycle, walk[:start]...)
	return append(cycle, cycle[0])
}

// contains checks if a slice contains a string.
func contains(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}
