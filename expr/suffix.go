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

// Suffix renders `inner WORD`, e.g. an ORDER BY term with ASC or DESC
// appended. It does not embed Comparable: the source engine never
// composes further expressions on top of a suffix expression.
type Suffix struct {
	Inner any
	Word  string
	kind  compiler.Kind
}

func newSuffix(kind compiler.Kind, inner any, word string) *Suffix {
	return &Suffix{Inner: wrapOperand(inner), Word: word, kind: kind}
}

// Kind implements compiler.Node.
func (s *Suffix) Kind() compiler.Kind { return s.kind }

// Asc builds `inner ASC`.
func Asc(inner any) *Suffix { return newSuffix(compiler.KindAsc, inner, "ASC") }

// Desc builds `inner DESC`.
func Desc(inner any) *Suffix { return newSuffix(compiler.KindDesc, inner, "DESC") }

func compileSuffix(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	s := n.(*Suffix)
	inner, err := d.Compile(s.Inner)
	if err != nil {
		return "", err
	}
	return inner + " " + s.Word, nil
}
