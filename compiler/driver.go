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

import "strings"

// Sequence is an ordered list of sub-expressions compiled together and
// joined by a separator. Elements may themselves be raw strings, nested
// Sequences, or Nodes; see Driver.Compile for the exact per-element
// rules. It is the Go stand-in for the source engine's bare tuple/list
// compile shortcut.
type Sequence []any

// Driver is the recursive descent that walks a tree of Node values,
// invoking the owning Registry's handlers and applying
// precedence-based parenthesization. A Driver is created fresh for
// every top-level Registry.Compile call and must not outlive it.
type Driver struct {
	Registry *Registry
	State    *State
}

// CompileSingle compiles exactly one Node at the State's current outer
// precedence, per the engine's compile-single algorithm:
//
//  1. Resolve a handler via the registry's ancestor-chain dispatch.
//  2. Set the state's inner precedence to the node's own registered
//     precedence (looked up by the node's concrete Kind, never by the
//     Kind at which the handler was found).
//  3. Invoke the handler to obtain a fragment.
//  4. Parenthesize if the inner precedence is strictly less than the
//     outer precedence the caller requested.
//  5. Restore the state's precedence to the outer value.
func (d *Driver) CompileSingle(n Node) (string, error) {
	outer := d.State.Precedence

	handler, err := d.Registry.dispatch(n.Kind())
	if err != nil {
		return "", err
	}

	inner := d.Registry.PrecedenceOf(n.Kind())
	restore := d.State.PushPrecedence(inner)
	fragment, err := handler(d, d.State, n)
	restore()
	if err != nil {
		return "", err
	}

	if inner < outer {
		return "(" + fragment + ")", nil
	}
	return fragment, nil
}

// Compile compiles any value the engine accepts at the top of an
// expression position: a raw string (returned verbatim, state
// untouched), a Sequence (each element compiled per the rules below and
// joined by sep, defaulting to ", "), or a Node (compiled via
// CompileSingle at the state's current outer precedence).
//
// Sequence element rules: a string element is used verbatim; a nested
// Sequence is compiled recursively with the outer precedence reset
// before recursing (so each element of a Sequence sees the same outer
// precedence, not one narrowed by a sibling); anything else is compiled
// as a single Node at the current outer precedence.
func (d *Driver) Compile(value any, sep ...string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case Sequence:
		return d.compileSequence(v, joinSep(sep))
	case Node:
		return d.CompileSingle(v)
	case nil:
		return "", malformedTreeError("cannot compile a nil value")
	default:
		return "", malformedTreeError("cannot compile value of type %T", value)
	}
}

func joinSep(sep []string) string {
	if len(sep) > 0 {
		return sep[0]
	}
	return ", "
}

func (d *Driver) compileSequence(seq Sequence, sep string) (string, error) {
	outer := d.State.Precedence
	parts := make([]string, 0, len(seq))
	for _, elem := range seq {
		var (
			fragment string
			err      error
		)
		switch e := elem.(type) {
		case string:
			fragment = e
		case Sequence:
			d.State.Precedence = outer
			fragment, err = d.compileSequence(e, sep)
		default:
			d.State.Precedence = outer
			fragment, err = d.Compile(elem)
		}
		if err != nil {
			return "", err
		}
		parts = append(parts, fragment)
	}
	d.State.Precedence = outer
	return strings.Join(parts, sep), nil
}
