// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package graph tracks dependency edges between decagrid cells.
//
// An edge "X depends on Y" exists whenever Y appears as a reference token in
// X's current formula. Edges are stored twice: precedent -> dependents for
// propagation queries, and dependent -> precedents so a cell's stale edges
// can be dropped in O(out-degree) when its formula changes.
package graph

import "nickandperla.net/decagrid/internal/cell"

// Graph is a bidirectional dependency index over cell identifiers.
// It is an ordinary owned value: construct with New, wipe with Reset.
type Graph struct {
	dependents map[cell.ID]map[cell.ID]struct{} // precedent -> cells that read it
	precedents map[cell.ID]map[cell.ID]struct{} // dependent -> cells it reads
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{
		dependents: make(map[cell.ID]map[cell.ID]struct{}),
		precedents: make(map[cell.ID]map[cell.ID]struct{}),
	}
}

// AddDependency records that dependent reads precedent. Duplicate calls are
// no-ops beyond set insertion.
func (g *Graph) AddDependency(dependent, precedent cell.ID) {
	if g.dependents[precedent] == nil {
		g.dependents[precedent] = make(map[cell.ID]struct{})
	}
	g.dependents[precedent][dependent] = struct{}{}

	if g.precedents[dependent] == nil {
		g.precedents[dependent] = make(map[cell.ID]struct{})
	}
	g.precedents[dependent][precedent] = struct{}{}
}

// RemovePrecedents deletes every edge where dependent is the dependent side.
// Called before re-adding a cell's edges so precedents dropped from the
// formula do not linger.
func (g *Graph) RemovePrecedents(dependent cell.ID) {
	for precedent := range g.precedents[dependent] {
		delete(g.dependents[precedent], dependent)
		if len(g.dependents[precedent]) == 0 {
			delete(g.dependents, precedent)
		}
	}
	delete(g.precedents, dependent)
}

// DirectDependents returns the cells that directly reference precedent.
func (g *Graph) DirectDependents(precedent cell.ID) []cell.ID {
	set := g.dependents[precedent]
	if len(set) == 0 {
		return nil
	}
	result := make([]cell.ID, 0, len(set))
	for id := range set {
		result = append(result, id)
	}
	return result
}

// Precedents returns the cells that dependent currently reads.
func (g *Graph) Precedents(dependent cell.ID) []cell.ID {
	set := g.precedents[dependent]
	if len(set) == 0 {
		return nil
	}
	result := make([]cell.ID, 0, len(set))
	for id := range set {
		result = append(result, id)
	}
	return result
}

// AllDependents returns the transitive closure of cells affected by
// precedent, each appearing at most once. Order is unspecified; propagation
// order is the caller's concern.
func (g *Graph) AllDependents(precedent cell.ID) []cell.ID {
	visited := map[cell.ID]struct{}{precedent: {}}
	var result []cell.ID

	queue := g.DirectDependents(precedent)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		result = append(result, id)
		queue = append(queue, g.DirectDependents(id)...)
	}
	return result
}

// HasCycleThrough reports whether some precedent path starting at id leads
// back to id: the cell participates in a cycle. A cycle strictly among
// precedents that does not pass through id is not reported here; the cell
// referencing it fails resolution instead and shows a reference error.
//
// The walk is a depth-first search with a done-set so each cell is expanded
// once, O(V+E). No per-branch set copies: a diamond of precedents (two
// branches converging on the same cell) must not be mistaken for a cycle,
// and must not cost exponential time.
func (g *Graph) HasCycleThrough(id cell.ID) bool {
	done := make(map[cell.ID]struct{})

	var walk func(cell.ID) bool
	walk = func(at cell.ID) bool {
		for precedent := range g.precedents[at] {
			if precedent == id {
				return true
			}
			if _, ok := done[precedent]; ok {
				continue
			}
			done[precedent] = struct{}{}
			if walk(precedent) {
				return true
			}
		}
		return false
	}

	return walk(id)
}

// Reset drops every edge.
func (g *Graph) Reset() {
	g.dependents = make(map[cell.ID]map[cell.ID]struct{})
	g.precedents = make(map[cell.ID]map[cell.ID]struct{})
}

// EdgeCount returns the number of stored edges (counted once, not per index).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, set := range g.precedents {
		n += len(set)
	}
	return n
}
