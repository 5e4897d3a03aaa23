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
	"strings"

	"github.com/sqlcraft/sqlcraft/compiler"
	"github.com/sqlcraft/sqlcraft/internal/bufpool"
)

// Assignment is one `column = value` pair of an UPDATE's SET clause.
// Update.Set is an ordered slice of Assignment, not a map, because the
// engine must emit entries in the caller's iteration order and Go map
// iteration order is randomized.
type Assignment struct {
	Column any
	Value  any
}

// Update is an UPDATE statement.
type Update struct {
	Set          []Assignment
	Where        any
	Table        any
	DefaultTable any
}

// Kind implements compiler.Node.
func (*Update) Kind() compiler.Kind { return compiler.KindUpdate }

// compileUpdate renders `UPDATE <table> SET <c1>=<v1>, ...[ WHERE <where>]`.
// Each pair's column compiles with OmitColumnTables set (scoped to just
// that column) and its value compiles with it explicitly cleared
// (scoped to just that value), per assignment. The table is resolved
// last, after SET and WHERE have both had a chance to contribute to
// auto-tables.
func compileUpdate(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	upd := n.(*Update)

	restoreAutoTables := s.PushAutoTables(nil)
	defer restoreAutoTables()

	sets := make([]string, 0, len(upd.Set))
	for _, a := range upd.Set {
		restoreOmit := s.PushOmitColumnTables(true)
		col, err := d.Compile(a.Column)
		restoreOmit()
		if err != nil {
			return "", err
		}

		restoreOmit = s.PushOmitColumnTables(false)
		val, err := d.Compile(a.Value)
		restoreOmit()
		if err != nil {
			return "", err
		}

		sets = append(sets, col+"="+val)
	}

	var where string
	if upd.Where != nil {
		var err error
		where, err = d.Compile(upd.Where)
		if err != nil {
			return "", err
		}
	}

	table, err := resolveTables(d, upd.Table, s.AutoTables, upd.DefaultTable, "update")
	if err != nil {
		return "", err
	}

	b := bufpool.Get()
	defer bufpool.Put(b)
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	if upd.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	return b.String(), nil
}
