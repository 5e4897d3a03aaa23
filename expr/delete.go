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

// Delete is a DELETE statement.
type Delete struct {
	Where        any
	Table        any
	DefaultTable any
}

// Kind implements compiler.Node.
func (*Delete) Kind() compiler.Kind { return compiler.KindDelete }

// compileDelete renders `DELETE FROM <table>[ WHERE <where>]`. The
// table is resolved after WHERE is compiled, so a qualified Column
// inside WHERE can contribute to auto-tables in time to matter.
func compileDelete(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	del := n.(*Delete)

	restoreAutoTables := s.PushAutoTables(nil)
	defer restoreAutoTables()

	var where string
	if del.Where != nil {
		var err error
		where, err = d.Compile(del.Where)
		if err != nil {
			return "", err
		}
	}

	table, err := resolveTables(d, del.Table, s.AutoTables, del.DefaultTable, "delete")
	if err != nil {
		return "", err
	}

	out := "DELETE FROM " + table
	if del.Where != nil {
		out += " WHERE " + where
	}
	return out, nil
}
