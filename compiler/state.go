/*
Copyright 2026 sqlcraft authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package compiler

// State is the mutable context threaded through every handler
// invocation during a single top-level Compile call. It is created
// fresh per call and discarded afterward; it must never be shared
// across concurrent compiles (see the concurrency note on Registry).
type State struct {
	// Precedence is the outer precedence the current compile step was
	// asked to compile into. Handlers read it to decide whether their
	// own children need parenthesizing.
	Precedence float64

	// Parameters accumulates bound values in left-to-right tree-walk
	// order. Every Param node appends exactly one value here.
	Parameters []any

	// AutoTables accumulates the table expressions implicitly
	// referenced by qualified Column nodes encountered while compiling
	// a statement body. Statement handlers push a fresh slice before
	// compiling their body and pop it afterward so a statement nested
	// inside another (e.g. a Select used as an operand) cannot leak
	// tables into its parent.
	AutoTables []any

	// OmitColumnTables, when true, forces Column nodes to render bare
	// (no "table." prefix) regardless of whether they carry a table.
	// Used by INSERT's column list and UPDATE's SET left-hand sides.
	OmitColumnTables bool

	stack []frame
}

// stackField tags which State field a frame restores.
type stackField int

const (
	fieldPrecedence stackField = iota
	fieldAutoTables
	fieldOmitColumnTables
)

// frame records one field's prior value so Pop can restore it. Only the
// field named by which is meaningful; the rest are zero.
type frame struct {
	which      stackField
	precedence float64
	autoTables []any
	omit       bool
}

// NewState returns a freshly initialized State for one top-level
// Compile call.
func NewState() *State {
	return &State{}
}

// Depth reports the current save-stack depth. Tests use it to assert
// that every push is matched by a pop, including on error paths.
func (s *State) Depth() int {
	return len(s.stack)
}

// PushPrecedence saves the current Precedence and installs newValue.
// The returned func restores it; callers should defer the returned func
// immediately so early returns (including error returns) still unwind
// the stack.
func (s *State) PushPrecedence(newValue float64) func() {
	s.stack = append(s.stack, frame{which: fieldPrecedence, precedence: s.Precedence})
	s.Precedence = newValue
	return s.popPrecedence
}

func (s *State) popPrecedence() {
	n := len(s.stack) - 1
	f := s.stack[n]
	s.stack = s.stack[:n]
	s.Precedence = f.precedence
}

// PushAutoTables saves the current AutoTables slice and installs
// newValue (typically an empty slice, for a nested statement scope).
func (s *State) PushAutoTables(newValue []any) func() {
	s.stack = append(s.stack, frame{which: fieldAutoTables, autoTables: s.AutoTables})
	s.AutoTables = newValue
	return s.popAutoTables
}

func (s *State) popAutoTables() {
	n := len(s.stack) - 1
	f := s.stack[n]
	s.stack = s.stack[:n]
	s.AutoTables = f.autoTables
}

// PushOmitColumnTables saves the current flag and installs newValue.
func (s *State) PushOmitColumnTables(newValue bool) func() {
	s.stack = append(s.stack, frame{which: fieldOmitColumnTables, omit: s.OmitColumnTables})
	s.OmitColumnTables = newValue
	return s.popOmitColumnTables
}

func (s *State) popOmitColumnTables() {
	n := len(s.stack) - 1
	f := s.stack[n]
	s.stack = s.stack[:n]
	s.OmitColumnTables = f.omit
}
