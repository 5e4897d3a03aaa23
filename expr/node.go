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

// Package expr is the concrete SQL expression tree: the leaf and
// interior node kinds from the engine's data model (Column, Param,
// operators, functions, the four statement kinds), their default
// handlers, and the fluent Comparable builder methods that stand in for
// the operator overloading the source engine used to compose trees.
//
// Nothing in this package is required by package compiler; a caller
// could define an entirely different node vocabulary against the same
// Registry. RegisterDefaults is the single entry point that wires this
// package's kinds onto a *compiler.Registry.
package expr

import "github.com/sqlcraft/sqlcraft/compiler"

// Null is the SQL NULL literal. It is a distinct node (rather than Go's
// nil) so the Eq/Ne handlers can special-case it into "IS [NOT] NULL",
// and so that an explicit NULL can appear anywhere an expression is
// expected without being mistaken for "value not supplied".
type Null struct{}

// Kind implements compiler.Node.
func (Null) Kind() compiler.Kind { return compiler.KindNull }

// IsNull reports whether v is the Null literal, after unwrapping a nil
// interface. Handlers use this to implement the IS [NOT] NULL rewrite.
func IsNull(v any) bool {
	_, ok := v.(Null)
	return ok
}

// Comparable is embedded by every comparable node kind (Column, Param,
// Func and its specializations, BinaryOper, NonAssocBinaryOper,
// CompoundOper) to give it the fluent comparison/arithmetic/logical
// builder methods the source engine obtained from operator overloading.
// A constructor must set self to the embedding value itself immediately
// after construction; see e.g. NewColumn.
type Comparable struct {
	self compiler.Node
}

// bind wires self to point at the concrete node embedding this
// Comparable. Every constructor for a comparable node kind must call
// this exactly once, with the node it just built.
func (c *Comparable) bind(self compiler.Node) { c.self = self }

// wrapOperand implements the auto-wrapping rule: an operand that is
// already a compiler.Node is used as-is; anything else, nil included,
// is wrapped in a Param (see eqWrapOperand below for the Eq/Ne-only
// variant that turns nil into the Null literal).
func wrapOperand(v any) any {
	if v == nil {
		return NewParam(nil)
	}
	if n, ok := v.(compiler.Node); ok {
		return n
	}
	return NewParam(v)
}

// eqWrapOperand implements the Eq/Ne-specific wrapping rule: unlike
// every other comparable operator, a nil operand passes through as the
// Null literal instead of becoming Param{Value: nil}, so the Eq/Ne
// handlers' IS [NOT] NULL rewrite fires. See SPEC_FULL.md §11.
func eqWrapOperand(v any) any {
	if v == nil {
		return Null{}
	}
	if n, ok := v.(compiler.Node); ok {
		return n
	}
	return NewParam(v)
}

// Eq builds `self = other`, or `self IS NULL` when other is nil or the
// Null literal.
func (c *Comparable) Eq(other any) *BinaryOper {
	return newBinaryOper(compiler.KindEq, " = ", c.self, eqWrapOperand(other))
}

// Ne builds `self != other`, or `self IS NOT NULL` when other is nil or
// the Null literal.
func (c *Comparable) Ne(other any) *BinaryOper {
	return newBinaryOper(compiler.KindNe, " != ", c.self, eqWrapOperand(other))
}

// Gt builds `self > other`.
func (c *Comparable) Gt(other any) *BinaryOper {
	return newBinaryOper(compiler.KindGt, " > ", c.self, wrapOperand(other))
}

// Ge builds `self >= other`.
func (c *Comparable) Ge(other any) *BinaryOper {
	return newBinaryOper(compiler.KindGe, " >= ", c.self, wrapOperand(other))
}

// Lt builds `self < other`.
func (c *Comparable) Lt(other any) *BinaryOper {
	return newBinaryOper(compiler.KindLt, " < ", c.self, wrapOperand(other))
}

// Le builds `self <= other`.
func (c *Comparable) Le(other any) *BinaryOper {
	return newBinaryOper(compiler.KindLe, " <= ", c.self, wrapOperand(other))
}

// Like builds `self LIKE other`.
func (c *Comparable) Like(other any) *BinaryOper {
	return newBinaryOper(compiler.KindLike, " LIKE ", c.self, wrapOperand(other))
}

// In builds `self IN (values...)`.
func (c *Comparable) In(values ...any) *BinaryOper {
	wrapped := make(compiler.Sequence, len(values))
	for i, v := range values {
		wrapped[i] = wrapOperand(v)
	}
	return newBinaryOper(compiler.KindIn, " IN ", c.self, wrapped)
}

// LShift builds `self << other`.
func (c *Comparable) LShift(other any) *BinaryOper {
	return newBinaryOper(compiler.KindLShift, "<<", c.self, wrapOperand(other))
}

// RShift builds `self >> other`.
func (c *Comparable) RShift(other any) *BinaryOper {
	return newBinaryOper(compiler.KindRShift, ">>", c.self, wrapOperand(other))
}

// And builds a compound `self AND other`.
func (c *Comparable) And(other any) *CompoundOper {
	return newCompoundOper(compiler.KindAnd, " AND ", c.self, wrapOperand(other))
}

// Or builds a compound `self OR other`.
func (c *Comparable) Or(other any) *CompoundOper {
	return newCompoundOper(compiler.KindOr, " OR ", c.self, wrapOperand(other))
}

// Add builds a compound `self + other`.
func (c *Comparable) Add(other any) *CompoundOper {
	return newCompoundOper(compiler.KindAdd, " + ", c.self, wrapOperand(other))
}

// Mul builds a compound `self * other`.
func (c *Comparable) Mul(other any) *CompoundOper {
	return newCompoundOper(compiler.KindMul, " * ", c.self, wrapOperand(other))
}

// Sub builds `self - other`, a non-associative operator (see
// NonAssocBinaryOper) so that `a.Sub(b.Sub(c))` parenthesizes its right
// operand while `a.Sub(b).Sub(c)` does not.
func (c *Comparable) Sub(other any) *NonAssocBinaryOper {
	return newNonAssocBinaryOper(compiler.KindSub, " - ", c.self, wrapOperand(other))
}

// Div builds `self / other`, non-associative.
func (c *Comparable) Div(other any) *NonAssocBinaryOper {
	return newNonAssocBinaryOper(compiler.KindDiv, " / ", c.self, wrapOperand(other))
}

// Mod builds `self % other`, non-associative.
func (c *Comparable) Mod(other any) *NonAssocBinaryOper {
	return newNonAssocBinaryOper(compiler.KindMod, " % ", c.self, wrapOperand(other))
}
