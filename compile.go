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

package sqlcraft

import (
	"github.com/sqlcraft/sqlcraft/compiler"
	"github.com/sqlcraft/sqlcraft/expr"
)

// Default is the process-wide registry used by Compile. It is
// populated once at package init with expr's built-in node kinds.
// Callers who need a customized compiler should not mutate Default in
// place (see Registry's concurrency contract); instead Clone it:
//
//	custom := sqlcraft.Default.Clone()
//	custom.Register(myHandler, myKind)
//	sqlText, params, err := custom.Compile(tree)
var Default = expr.NewRegistry()

// Compile renders value — a raw string, a compiler.Sequence, or any
// compiler.Node built from package expr's constructors — to a
// parameterized SQL string and its ordered bound parameters, using the
// Default registry.
func Compile(value any) (sqlText string, parameters []any, err error) {
	return Default.Compile(value)
}

// CompileError is re-exported for callers who only import the root
// package and want to branch on compile failures with errors.As.
type CompileError = compiler.CompileError

// Sentinel errors re-exported from package compiler, for callers who
// only import the root package.
var (
	ErrUnknownKind   = compiler.ErrUnknownKind
	ErrMissingTable  = compiler.ErrMissingTable
	ErrMalformedTree = compiler.ErrMalformedTree
)
