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

import (
	"github.com/pkg/errors"
)

// Sentinel errors identifying the three ways a compile can fail:
// unknown node kind, missing table(s), and malformed tree. Callers
// branch on these with errors.Is, since CompileError wraps whichever
// sentinel applies.
var (
	// ErrUnknownKind is returned when dispatch walked a Kind's entire
	// ancestor chain and found no registered handler.
	ErrUnknownKind = errors.New("compiler: don't know how to compile this kind")

	// ErrMissingTable is returned when a statement could not resolve a
	// FROM/INTO/UPDATE/DELETE-FROM table from explicit tables,
	// auto-collected tables, or a default.
	ErrMissingTable = errors.New("compiler: couldn't find any table(s)")

	// ErrMalformedTree is returned by handlers that detect a structural
	// violation in the tree they were asked to compile.
	ErrMalformedTree = errors.New("compiler: malformed expression tree")
)

// CompileError is the single error kind the engine produces. It always
// wraps one of the sentinels above and carries a human-readable message
// built with contextual detail (which Kind, which clause).
type CompileError struct {
	cause error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return e.cause.Error()
}

// Unwrap returns the wrapped sentinel (or wrapping chain), so
// errors.Is(err, compiler.ErrMissingTable) works on a *CompileError.
func (e *CompileError) Unwrap() error {
	return e.cause
}

// unknownKindError builds a CompileError naming the offending Kind.
func unknownKindError(kind Kind) error {
	return &CompileError{cause: errors.Wrapf(ErrUnknownKind, "kind %q", kind)}
}

// missingTableError builds a CompileError naming the offending statement.
func missingTableError(statement string) error {
	return &CompileError{cause: errors.Wrapf(ErrMissingTable, "in %s", statement)}
}

// malformedTreeError builds a CompileError with a caller-supplied reason.
func malformedTreeError(format string, args ...any) error {
	return &CompileError{cause: errors.Wrapf(ErrMalformedTree, format, args...)}
}

var _ error = (*CompileError)(nil)
