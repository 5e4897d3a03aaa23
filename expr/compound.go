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

// CompoundOper is an n-ary operator: its operands are joined by its own
// symbol (e.g. "a AND b AND c"). And, Or, Add, and Mul are all compound
// in the source engine even though the common case is binary.
type CompoundOper struct {
	Comparable
	Operands compiler.Sequence
	Symbol   string
	kind     compiler.Kind
}

func newCompoundOper(kind compiler.Kind, symbol string, operands ...any) *CompoundOper {
	c := &CompoundOper{Operands: compiler.Sequence(operands), Symbol: symbol, kind: kind}
	c.bind(c)
	return c
}

// Kind implements compiler.Node.
func (c *CompoundOper) Kind() compiler.Kind { return c.kind }

// And builds `exprs[0] AND exprs[1] AND ...`, auto-wrapping any operand
// that is not already a compiler.Node.
func And(exprs ...any) *CompoundOper {
	return newCompoundOper(compiler.KindAnd, " AND ", wrapAll(exprs)...)
}

// Or builds `exprs[0] OR exprs[1] OR ...`.
func Or(exprs ...any) *CompoundOper {
	return newCompoundOper(compiler.KindOr, " OR ", wrapAll(exprs)...)
}

// Add builds `exprs[0] + exprs[1] + ...`.
func Add(exprs ...any) *CompoundOper {
	return newCompoundOper(compiler.KindAdd, " + ", wrapAll(exprs)...)
}

// Mul builds `exprs[0] * exprs[1] * ...`.
func Mul(exprs ...any) *CompoundOper {
	return newCompoundOper(compiler.KindMul, " * ", wrapAll(exprs)...)
}

func wrapAll(exprs []any) []any {
	wrapped := make([]any, len(exprs))
	for i, e := range exprs {
		wrapped[i] = wrapOperand(e)
	}
	return wrapped
}

func compileCompoundOper(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	c := n.(*CompoundOper)
	return d.Compile(c.Operands, c.Symbol)
}
