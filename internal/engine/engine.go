// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package engine owns the decagrid cell table and drives recalculation.
//
// An edit flows through one path: drop the edited cell's stale dependency
// edges, compile its raw input (resolving references against current display
// values), rewire edges from the references found, check for cycles, commit,
// then re-evaluate every transitively dependent cell breadth-first, each at
// most once per edit. The engine is synchronous and single-writer; it never
// fails visibly on cell content, only on an invalid identifier.
package engine

import (
	"fmt"
	"strconv"

	"nickandperla.net/decagrid/internal/cell"
	"nickandperla.net/decagrid/internal/formula"
	"nickandperla.net/decagrid/internal/graph"
)

const circularReason = "Circular reference detected"

// Engine is the recalculation engine over the fixed 100-cell universe.
type Engine struct {
	cells map[cell.ID]*cell.Record
	deps  *graph.Graph
}

// New creates an engine with all 100 cells empty.
func New() *Engine {
	e := &Engine{deps: graph.New()}
	e.initCells()
	return e
}

func (e *Engine) initCells() {
	e.cells = make(map[cell.ID]*cell.Record, cell.Columns*cell.Rows)
	for _, id := range cell.AllIDs() {
		e.cells[id] = &cell.Record{}
	}
}

// ApplyEdit applies a raw input to one cell and propagates recalculation to
// every transitively dependent cell. Content failures never surface as an
// error; they land in the affected records' ErrorState.
func (e *Engine) ApplyEdit(id cell.ID, raw string) error {
	if _, ok := e.cells[id]; !ok {
		return fmt.Errorf("unknown cell id %q", id)
	}

	e.recalculate(id, raw)

	// Breadth-first from the direct dependents outward. The visited set is
	// seeded with the edited cell so each cell recalculates at most once
	// per edit, which also guarantees termination on cyclic graphs.
	visited := map[cell.ID]struct{}{id: {}}
	queue := e.deps.DirectDependents(id)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, ok := visited[next]; ok {
			continue
		}
		visited[next] = struct{}{}

		// Dependents re-derive their own edges from their existing formula.
		e.recalculate(next, e.cells[next].RawInput)
		queue = append(queue, e.deps.DirectDependents(next)...)
	}

	return nil
}

// recalculate runs the compile-rewire-check-commit sequence for one cell.
func (e *Engine) recalculate(id cell.ID, raw string) {
	e.deps.RemovePrecedents(id)

	res := formula.Compile(raw, e.resolve)

	// Edges reflect the reference tokens of the current formula even when
	// compilation failed: a later edit to a precedent must still reach us.
	for _, ref := range res.Refs {
		e.deps.AddDependency(id, ref)
	}

	display, errState := res.Display, res.ErrorState
	if e.deps.HasCycleThrough(id) {
		// The cycle verdict overrides whatever the compiler produced.
		display = cell.SentinelCircular
		errState = circularReason
	}

	rec := e.cells[id]
	rec.RawInput = raw
	rec.Formula = raw
	rec.Display = display
	rec.ErrorState = errState
}

// resolve reads another cell's current display value as a number. It fails
// for empty cells, sentinel values, and non-numeric text.
func (e *Engine) resolve(id cell.ID) (float64, bool) {
	rec, ok := e.cells[id]
	if !ok || rec.IsError() || rec.Display == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(rec.Display, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Cell returns a read-only snapshot of one cell record.
func (e *Engine) Cell(id cell.ID) (cell.Record, bool) {
	rec, ok := e.cells[id]
	if !ok {
		return cell.Record{}, false
	}
	return *rec, true
}

// Cells returns a snapshot of the whole grid for full redraws.
func (e *Engine) Cells() map[cell.ID]cell.Record {
	out := make(map[cell.ID]cell.Record, len(e.cells))
	for id, rec := range e.cells {
		out[id] = *rec
	}
	return out
}

// Reset returns every cell to empty and drops all dependency edges.
func (e *Engine) Reset() {
	e.initCells()
	e.deps.Reset()
}
