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

package expr

import "github.com/sqlcraft/sqlcraft/compiler"

// BinaryOper is `left SYMBOL right`. Both operands are compiled at the
// operator's own precedence, since the operator is (syntactically)
// associative enough that the source engine never needed to force
// parenthesization of either side beyond ordinary precedence rules.
type BinaryOper struct {
	Comparable
	Left, Right any
	Symbol      string
	kind        compiler.Kind
}

func newBinaryOper(kind compiler.Kind, symbol string, left, right any) *BinaryOper {
	b := &BinaryOper{Left: left, Right: right, Symbol: symbol, kind: kind}
	b.bind(b)
	return b
}

// Kind implements compiler.Node.
func (b *BinaryOper) Kind() compiler.Kind { return b.kind }

// Eq builds `left = right`, or `left IS NULL` when right is nil or the
// Null literal. This is the free-function form of (*Comparable).Eq, for
// callers who prefer storm-style constructors over fluent chaining.
func Eq(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindEq, " = ", wrapSelf(left), eqWrapOperand(right))
}

// Ne builds `left != right`, or `left IS NOT NULL` when right is nil or
// the Null literal.
func Ne(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindNe, " != ", wrapSelf(left), eqWrapOperand(right))
}

// Gt builds `left > right`.
func Gt(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindGt, " > ", wrapSelf(left), wrapOperand(right))
}

// Ge builds `left >= right`.
func Ge(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindGe, " >= ", wrapSelf(left), wrapOperand(right))
}

// Lt builds `left < right`.
func Lt(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindLt, " < ", wrapSelf(left), wrapOperand(right))
}

// Le builds `left <= right`.
func Le(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindLe, " <= ", wrapSelf(left), wrapOperand(right))
}

// Like builds `left LIKE right`.
func Like(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindLike, " LIKE ", wrapSelf(left), wrapOperand(right))
}

// LShift builds `left << right`.
func LShift(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindLShift, "<<", wrapSelf(left), wrapOperand(right))
}

// RShift builds `left >> right`.
func RShift(left, right any) *BinaryOper {
	return newBinaryOper(compiler.KindRShift, ">>", wrapSelf(left), wrapOperand(right))
}

// In builds `left IN (values...)`.
func In(left any, values ...any) *BinaryOper {
	wrapped := make(compiler.Sequence, len(values))
	for i, v := range values {
		wrapped[i] = wrapOperand(v)
	}
	return newBinaryOper(compiler.KindIn, " IN ", wrapSelf(left), wrapped)
}

// wrapSelf applies the same auto-wrapping rule to a constructor's left
// operand as to its right: a raw Go value becomes a Param, a Node is
// used as-is. The free-function constructors accept "any" on both
// sides so Eq(Column(...), 3) and Eq(3, Column(...)) both work.
func wrapSelf(v any) any {
	return wrapOperand(v)
}

func compileBinaryOper(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	b := n.(*BinaryOper)
	left, err := d.Compile(b.Left)
	if err != nil {
		return "", err
	}
	right, err := d.Compile(b.Right)
	if err != nil {
		return "", err
	}
	return left + b.Symbol + right, nil
}

func compileEq(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	b := n.(*BinaryOper)
	left, err := d.Compile(b.Left)
	if err != nil {
		return "", err
	}
	if IsNull(b.Right) {
		return left + " IS NULL", nil
	}
	right, err := d.Compile(b.Right)
	if err != nil {
		return "", err
	}
	return left + " = " + right, nil
}

func compileNe(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	b := n.(*BinaryOper)
	left, err := d.Compile(b.Left)
	if err != nil {
		return "", err
	}
	if IsNull(b.Right) {
		return left + " IS NOT NULL", nil
	}
	right, err := d.Compile(b.Right)
	if err != nil {
		return "", err
	}
	return left + " != " + right, nil
}

// compileIn renders `left IN (right)`. It resets the state's inner
// precedence to 0 before compiling the right operand, forcing it to
// never need parenthesizing on its own account — the explicit "(" ")"
// around it already does the job.
func compileIn(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	b := n.(*BinaryOper)
	left, err := d.Compile(b.Left)
	if err != nil {
		return "", err
	}
	s.Precedence = 0
	right, err := d.Compile(b.Right)
	if err != nil {
		return "", err
	}
	return left + " IN (" + right + ")", nil
}

// NonAssocBinaryOper is `left SYMBOL right` where, unlike BinaryOper,
// the right operand is compiled at a precedence strictly greater than
// the operator's own — encoded here as +0.5, matching the source
// engine's trick for forcing parenthesization when the right child has
// equal precedence. This is what makes `a - (b - c)` keep its inner
// parentheses while `(a - b) - c` does not need them.
type NonAssocBinaryOper struct {
	Comparable
	Left, Right any
	Symbol      string
	kind        compiler.Kind
}

func newNonAssocBinaryOper(kind compiler.Kind, symbol string, left, right any) *NonAssocBinaryOper {
	b := &NonAssocBinaryOper{Left: left, Right: right, Symbol: symbol, kind: kind}
	b.bind(b)
	return b
}

// Kind implements compiler.Node.
func (b *NonAssocBinaryOper) Kind() compiler.Kind { return b.kind }

// Sub builds `left - right`, non-associative.
func Sub(left, right any) *NonAssocBinaryOper {
	return newNonAssocBinaryOper(compiler.KindSub, " - ", wrapSelf(left), wrapOperand(right))
}

// Div builds `left / right`, non-associative.
func Div(left, right any) *NonAssocBinaryOper {
	return newNonAssocBinaryOper(compiler.KindDiv, " / ", wrapSelf(left), wrapOperand(right))
}

// Mod builds `left % right`, non-associative.
func Mod(left, right any) *NonAssocBinaryOper {
	return newNonAssocBinaryOper(compiler.KindMod, " % ", wrapSelf(left), wrapOperand(right))
}

func compileNonAssocBinaryOper(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	b := n.(*NonAssocBinaryOper)
	left, err := d.Compile(b.Left)
	if err != nil {
		return "", err
	}
	s.Precedence += 0.5
	right, err := d.Compile(b.Right)
	if err != nil {
		return "", err
	}
	return left + b.Symbol + right, nil
}
