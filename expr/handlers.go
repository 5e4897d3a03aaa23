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

// RegisterDefaults populates r with every node kind this package
// defines: its handlers, its ancestor fallback chains, and the
// standard precedence table (lower binds looser).
//
// Kinds that have no dedicated handler here (Gt, Ge, Lt, Le, Like,
// LShift, RShift fall back to BinaryOper; And, Or, Add, Mul fall back
// to CompoundOper; Max, Min, Avg, Sum fall back to Func; Asc, Desc fall
// back to Suffix) demonstrate the dispatch-ancestor-chain path rather
// than registering a redundant identical handler.
func RegisterDefaults(r *compiler.Registry) {
	r.Register(func(_ *compiler.Driver, _ *compiler.State, _ compiler.Node) (string, error) {
		return "NULL", nil
	}, compiler.KindNull)

	r.Register(compileColumn, compiler.KindColumn)
	r.Register(compileParam, compiler.KindParam)

	r.Register(compileBinaryOper, compiler.KindBinaryOper)
	r.Register(compileNonAssocBinaryOper, compiler.KindNonAssocBinaryOper)
	r.Register(compileCompoundOper, compiler.KindCompoundOper)
	r.Register(compileFunc, compiler.KindFunc)
	r.Register(compileSuffix, compiler.KindSuffix)

	r.Register(compileSelect, compiler.KindSelect)
	r.Register(compileInsert, compiler.KindInsert)
	r.Register(compileUpdate, compiler.KindUpdate)
	r.Register(compileDelete, compiler.KindDelete)

	r.Register(compileEq, compiler.KindEq)
	r.Register(compileNe, compiler.KindNe)
	r.Register(compileIn, compiler.KindIn)
	r.Register(compileCount, compiler.KindCount)

	// Ancestor chains: a kind with no direct handler above falls back
	// to its parent's, per the dispatch algorithm in compiler.Registry.
	r.RegisterAncestor(compiler.KindGt, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindGe, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindLt, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindLe, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindLike, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindLShift, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindRShift, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindNonAssocBinaryOper, compiler.KindBinaryOper)
	r.RegisterAncestor(compiler.KindSub, compiler.KindNonAssocBinaryOper)
	r.RegisterAncestor(compiler.KindDiv, compiler.KindNonAssocBinaryOper)
	r.RegisterAncestor(compiler.KindMod, compiler.KindNonAssocBinaryOper)
	r.RegisterAncestor(compiler.KindAnd, compiler.KindCompoundOper)
	r.RegisterAncestor(compiler.KindOr, compiler.KindCompoundOper)
	r.RegisterAncestor(compiler.KindAdd, compiler.KindCompoundOper)
	r.RegisterAncestor(compiler.KindMul, compiler.KindCompoundOper)
	r.RegisterAncestor(compiler.KindMax, compiler.KindFunc)
	r.RegisterAncestor(compiler.KindMin, compiler.KindFunc)
	r.RegisterAncestor(compiler.KindAvg, compiler.KindFunc)
	r.RegisterAncestor(compiler.KindSum, compiler.KindFunc)
	r.RegisterAncestor(compiler.KindAsc, compiler.KindSuffix)
	r.RegisterAncestor(compiler.KindDesc, compiler.KindSuffix)

	r.SetPrecedence(10, compiler.KindSelect, compiler.KindInsert, compiler.KindUpdate, compiler.KindDelete)
	r.SetPrecedence(20, compiler.KindOr)
	r.SetPrecedence(30, compiler.KindAnd)
	r.SetPrecedence(40,
		compiler.KindEq, compiler.KindNe, compiler.KindGt, compiler.KindGe,
		compiler.KindLt, compiler.KindLe, compiler.KindLike, compiler.KindIn,
	)
	r.SetPrecedence(50, compiler.KindLShift, compiler.KindRShift)
	r.SetPrecedence(60, compiler.KindAdd, compiler.KindSub)
	r.SetPrecedence(70, compiler.KindMul, compiler.KindDiv, compiler.KindMod)
}

// NewRegistry returns a *compiler.Registry pre-populated with this
// package's default handlers, ancestor chains, and precedence table —
// a convenience wrapper around compiler.NewRegistry + RegisterDefaults.
func NewRegistry() *compiler.Registry {
	r := compiler.NewRegistry()
	RegisterDefaults(r)
	return r
}
