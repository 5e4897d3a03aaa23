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
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Handler renders one node's own fragment to a string. Handlers receive
// the Driver so they can recursively compile their children (letting
// precedence and state propagate correctly) and the State so they can
// read or scope-push its fields.
type Handler func(d *Driver, s *State, n Node) (string, error)

// Registry is the dispatch table mapping Kind to Handler, plus the
// per-Kind precedence table and the single-parent ancestor chain used
// to fall back to a less specific Kind's handler. A Registry is safe
// for concurrent read-only use (Compile) once populated; Register,
// RegisterAncestor, and SetPrecedence are not concurrent-safe with
// reads or with each other — mutate during setup, then freeze, or
// Clone per goroutine.
type Registry struct {
	handlers   map[Kind]Handler
	precedence map[Kind]float64
	parents    map[Kind]Kind

	// Logger, when non-nil, receives structured Debug-level entries for
	// registration mutations and top-level Compile calls. Nil by
	// default: zero overhead when unset.
	Logger *logrus.Logger
}

// NewRegistry returns an empty registry: no handlers, no precedences,
// no ancestor chains. Use expr.RegisterDefaults to populate one with
// the engine's built-in node kinds, or build a registry from scratch to
// compile an entirely different tree shape.
func NewRegistry() *Registry {
	return &Registry{
		handlers:   make(map[Kind]Handler),
		precedence: make(map[Kind]float64),
		parents:    make(map[Kind]Kind),
	}
}

// Register associates handler with every kind given, overwriting any
// prior registration for that kind.
func (r *Registry) Register(handler Handler, kinds ...Kind) {
	for _, k := range kinds {
		r.handlers[k] = handler
		if r.Logger != nil {
			r.Logger.WithField("kind", k).Debug("compiler: handler registered")
		}
	}
}

// RegisterAncestor declares that kind, when no handler is registered
// for it directly, falls back to parent's handler. This is how new node
// kinds are declared to inherit an existing kind's default handler
// without modifying the registry's core dispatch logic.
func (r *Registry) RegisterAncestor(kind, parent Kind) {
	r.parents[kind] = parent
	if r.Logger != nil {
		r.Logger.WithFields(logrus.Fields{"kind": kind, "parent": parent}).Debug("compiler: ancestor registered")
	}
}

// SetPrecedence assigns precedence to every kind given. A kind with no
// explicit precedence defaults to MaxPrecedence.
func (r *Registry) SetPrecedence(precedence float64, kinds ...Kind) {
	for _, k := range kinds {
		r.precedence[k] = precedence
		if r.Logger != nil {
			r.Logger.WithFields(logrus.Fields{"kind": k, "precedence": precedence}).Debug("compiler: precedence set")
		}
	}
}

// PrecedenceOf returns kind's registered precedence, or MaxPrecedence if
// none was set.
func (r *Registry) PrecedenceOf(kind Kind) float64 {
	if p, ok := r.precedence[kind]; ok {
		return p
	}
	return MaxPrecedence
}

// Clone deep-copies both the handler and precedence tables (and the
// ancestor chain) into a new, independent Registry. The clone shares no
// mutable state with the parent; mutating one does not affect the
// other. The Logger field is copied by reference (a clone logs to the
// same logger by default); set Clone().Logger = nil to silence it.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for k, v := range r.handlers {
		clone.handlers[k] = v
	}
	for k, v := range r.precedence {
		clone.precedence[k] = v
	}
	for k, v := range r.parents {
		clone.parents[k] = v
	}
	clone.Logger = r.Logger
	return clone
}

// dispatch resolves kind to a Handler by walking kind, then its
// registered parent, then that parent's parent, and so on, returning
// the first Handler found. It returns ErrUnknownKind (wrapped in a
// CompileError) if the chain is exhausted without a match.
func (r *Registry) dispatch(kind Kind) (Handler, error) {
	seen := make(map[Kind]bool)
	for k := kind; ; {
		if seen[k] {
			break // cyclic ancestor chain; treat as exhausted
		}
		seen[k] = true
		if h, ok := r.handlers[k]; ok {
			return h, nil
		}
		parent, ok := r.parents[k]
		if !ok {
			break
		}
		k = parent
	}
	return nil, unknownKindError(kind)
}

// Compile is the top-level entry point: it creates a fresh Driver and
// State, compiles value (a raw string, a Sequence, or a Node), and
// returns the rendered SQL text together with the accumulated parameter
// list in left-to-right tree-walk order. State is discarded after the
// call returns; it is never observable after an error.
func (r *Registry) Compile(value any) (sqlText string, parameters []any, err error) {
	var callID string
	var start time.Time
	if r.Logger != nil {
		callID = uuid.NewString()
		start = time.Now()
		r.Logger.WithField("compile_id", callID).Debug("compiler: compile started")
	}

	d := &Driver{Registry: r, State: NewState()}
	sqlText, err = d.Compile(value)
	if err != nil {
		if r.Logger != nil {
			r.Logger.WithFields(logrus.Fields{"compile_id": callID, "error": err}).Debug("compiler: compile failed")
		}
		return "", nil, err
	}

	if r.Logger != nil {
		r.Logger.WithFields(logrus.Fields{
			"compile_id": callID,
			"elapsed":    time.Since(start),
			"params":     len(d.State.Parameters),
		}).Debug("compiler: compile finished")
	}
	return sqlText, d.State.Parameters, nil
}
