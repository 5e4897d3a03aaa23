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

// Package compiler implements the node-kind-dispatched SQL compiler: a
// mutable registry of handlers and precedences, a threaded compilation
// state, and the recursive-descent driver that renders a tree of
// compiler.Node values to a parameterized SQL string.
//
// The compiler package knows nothing about concrete SQL constructs
// (columns, operators, statements); those live in package expr and
// register themselves onto a *Registry through RegisterAncestor and
// Register. This keeps the dispatch machinery open for extension
// without modifying this package: new node kinds, or an entirely
// different vocabulary, can register against the same Registry.
package compiler

// Kind tags the concrete variant of a Node for dispatch and precedence
// lookup. It plays the role the source engine's Python class played:
// dispatch on a node's Kind, falling back through a declared ancestor
// chain when no handler is registered for the concrete Kind.
type Kind string

// Node is implemented by every value that participates in the
// expression tree. Kind must return the same value for the lifetime of
// the node; it is used both for handler dispatch (via the ancestor
// chain) and precedence lookup (always on the node's own Kind, never on
// an ancestor's).
type Node interface {
	Kind() Kind
}

// Built-in node kinds. expr.RegisterDefaults registers a handler (direct
// or through an ancestor) for all of these, and precedences for the
// statement and operator kinds; the rest keep MaxPrecedence. Callers may
// declare further kinds with RegisterAncestor to inherit a default
// handler.
const (
	KindNull   Kind = "Null"
	KindColumn Kind = "Column"
	KindParam  Kind = "Param"

	KindBinaryOper         Kind = "BinaryOper"
	KindNonAssocBinaryOper Kind = "NonAssocBinaryOper"
	KindCompoundOper       Kind = "CompoundOper"
	KindFunc               Kind = "Func"
	KindSuffix             Kind = "Suffix"

	KindSelect Kind = "Select"
	KindInsert Kind = "Insert"
	KindUpdate Kind = "Update"
	KindDelete Kind = "Delete"

	KindEq   Kind = "Eq"
	KindNe   Kind = "Ne"
	KindGt   Kind = "Gt"
	KindGe   Kind = "Ge"
	KindLt   Kind = "Lt"
	KindLe   Kind = "Le"
	KindLike Kind = "Like"
	KindIn   Kind = "In"

	KindLShift Kind = "LShift"
	KindRShift Kind = "RShift"

	KindAdd Kind = "Add"
	KindSub Kind = "Sub"
	KindMul Kind = "Mul"
	KindDiv Kind = "Div"
	KindMod Kind = "Mod"

	KindAnd Kind = "And"
	KindOr  Kind = "Or"

	KindCount Kind = "Count"
	KindMax   Kind = "Max"
	KindMin   Kind = "Min"
	KindAvg   Kind = "Avg"
	KindSum   Kind = "Sum"

	KindAsc  Kind = "Asc"
	KindDesc Kind = "Desc"
)

// MaxPrecedence is the sentinel precedence assigned to any Kind with no
// explicit entry in a Registry's precedence table. It compares greater
// than every registered precedence, so a node of unregistered precedence
// is never parenthesized on precedence grounds alone.
const MaxPrecedence = 1000.0
