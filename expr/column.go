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

import (
	"fmt"

	"github.com/sqlcraft/sqlcraft/compiler"
)

// Column is a column reference, optionally qualified by a table. Table
// may be nil (unqualified), a string (rendered verbatim), or any other
// compilable value (e.g. another Column naming a table alias).
type Column struct {
	Comparable
	Name  string
	Table any
}

// NewColumn builds a Column. table may be nil for an unqualified
// reference.
func NewColumn(name string, table any) *Column {
	c := &Column{Name: name, Table: table}
	c.bind(c)
	return c
}

// Kind implements compiler.Node.
func (*Column) Kind() compiler.Kind { return compiler.KindColumn }

func compileColumn(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	col := n.(*Column)
	if col.Table != nil {
		s.AutoTables = append(s.AutoTables, col.Table)
	}
	if col.Table == nil || s.OmitColumnTables {
		return col.Name, nil
	}
	table, err := d.Compile(col.Table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s", table, col.Name), nil
}
