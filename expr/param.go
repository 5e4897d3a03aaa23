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

// Param is a bound parameter. It is never rendered into the SQL text;
// it always renders as "?" and appends Value to the compilation
// state's parameter list in tree-walk order.
type Param struct {
	Comparable
	Value any
}

// NewParam builds a Param wrapping value.
func NewParam(value any) *Param {
	p := &Param{Value: value}
	p.bind(p)
	return p
}

// Kind implements compiler.Node.
func (*Param) Kind() compiler.Kind { return compiler.KindParam }

func compileParam(_ *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	p := n.(*Param)
	s.Parameters = append(s.Parameters, p.Value)
	return "?", nil
}
