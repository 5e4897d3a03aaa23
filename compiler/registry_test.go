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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kindLeaf Kind = "test-leaf"
const kindMid Kind = "test-mid"
const kindTop Kind = "test-top"

func leafHandler(_ *Driver, _ *State, _ Node) (string, error) {
	return "leaf", nil
}

type fakeNode struct{ kind Kind }

func (f fakeNode) Kind() Kind { return f.kind }

func TestRegistry_DispatchDirect(t *testing.T) {
	r := NewRegistry()
	r.Register(leafHandler, kindLeaf)

	h, err := r.dispatch(kindLeaf)
	require.NoError(t, err)
	frag, err := h(nil, nil, fakeNode{kindLeaf})
	require.NoError(t, err)
	assert.Equal(t, "leaf", frag)
}

func TestRegistry_DispatchAncestorChain(t *testing.T) {
	r := NewRegistry()
	r.Register(leafHandler, kindLeaf)
	r.RegisterAncestor(kindMid, kindLeaf)
	r.RegisterAncestor(kindTop, kindMid)

	h, err := r.dispatch(kindTop)
	require.NoError(t, err)
	frag, _ := h(nil, nil, fakeNode{kindTop})
	assert.Equal(t, "leaf", frag)
}

func TestRegistry_DispatchUnknownKind(t *testing.T) {
	r := NewRegistry()
	_, err := r.dispatch(kindLeaf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistry_DispatchCyclicAncestorChain(t *testing.T) {
	r := NewRegistry()
	r.RegisterAncestor(kindLeaf, kindMid)
	r.RegisterAncestor(kindMid, kindLeaf)

	_, err := r.dispatch(kindLeaf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistry_PrecedenceOf_DefaultsToMax(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, MaxPrecedence, r.PrecedenceOf(kindLeaf))

	r.SetPrecedence(40, kindLeaf)
	assert.Equal(t, 40.0, r.PrecedenceOf(kindLeaf))
}

func TestRegistry_Clone_IsIndependent(t *testing.T) {
	r := NewRegistry()
	r.Register(leafHandler, kindLeaf)
	r.SetPrecedence(40, kindLeaf)
	r.RegisterAncestor(kindMid, kindLeaf)

	clone := r.Clone()
	clone.SetPrecedence(99, kindLeaf)
	clone.Register(func(_ *Driver, _ *State, _ Node) (string, error) {
		return "clone-only", nil
	}, kindTop)

	assert.Equal(t, 40.0, r.PrecedenceOf(kindLeaf), "mutating the clone must not affect the parent")
	assert.Equal(t, 99.0, clone.PrecedenceOf(kindLeaf))

	_, err := r.dispatch(kindTop)
	assert.Error(t, err, "handler registered only on the clone must be invisible to the parent")
}

func TestRegistry_Compile_TopLevelRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Register(func(d *Driver, s *State, n Node) (string, error) {
		s.Parameters = append(s.Parameters, "bound")
		return "?", nil
	}, kindLeaf)

	sqlText, params, err := r.Compile(fakeNode{kindLeaf})
	require.NoError(t, err)
	assert.Equal(t, "?", sqlText)
	assert.Equal(t, []any{"bound"}, params)
}

func TestRegistry_Compile_ErrorDiscardsState(t *testing.T) {
	r := NewRegistry()
	sqlText, params, err := r.Compile(fakeNode{kindLeaf})
	require.Error(t, err)
	assert.Empty(t, sqlText)
	assert.Nil(t, params)
}
