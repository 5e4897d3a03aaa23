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

// Insert is an INSERT statement. Columns and Values must be the same
// length; Table or DefaultTable (or an auto-collected table from the
// column list) must resolve to something, or compilation fails.
type Insert struct {
	Columns      any
	Values       any
	Table        any
	DefaultTable any
}

// Kind implements compiler.Node.
func (*Insert) Kind() compiler.Kind { return compiler.KindInsert }

// compileInsert renders `INSERT INTO <table> (<columns>) VALUES (<values>)`.
// The column list is compiled with OmitColumnTables set so columns
// render bare, even though a qualified Column still contributes its
// table to auto-tables (used for table resolution when Table and
// DefaultTable are both absent).
func compileInsert(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	ins := n.(*Insert)

	restoreAutoTables := s.PushAutoTables(nil)
	defer restoreAutoTables()

	restoreOmit := s.PushOmitColumnTables(true)
	columns, err := d.Compile(ins.Columns)
	restoreOmit()
	if err != nil {
		return "", err
	}

	values, err := d.Compile(ins.Values)
	if err != nil {
		return "", err
	}

	table, err := resolveTables(d, ins.Table, s.AutoTables, ins.DefaultTable, "insert")
	if err != nil {
		return "", err
	}

	return "INSERT INTO " + table + " (" + columns + ") VALUES (" + values + ")", nil
}
