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
	"strconv"

	"github.com/sqlcraft/sqlcraft/compiler"
	"github.com/sqlcraft/sqlcraft/internal/bufpool"
)

// Select is a SELECT statement. Columns is required; every other field
// is optional and modeled as Go nil meaning "not supplied" (the
// engine's Undef sentinel). Limit and Offset use *int for the same
// reason, since 0 is a meaningful limit/offset value.
type Select struct {
	Columns       any
	Where         any
	Tables        any
	DefaultTables any
	OrderBy       any
	GroupBy       any
	Limit         *int
	Offset        *int
	Distinct      bool
}

// Kind implements compiler.Node.
func (*Select) Kind() compiler.Kind { return compiler.KindSelect }

// compileSelect renders:
//
//	SELECT [DISTINCT ] <columns>[ FROM <tables>][ WHERE <where>]
//	  [ ORDER BY <order_by>][ GROUP BY <group_by>][ LIMIT <n>][ OFFSET <n>]
//
// The tables clause is materialized last, after every other clause has
// been compiled, so that a qualified Column anywhere in the statement
// (not just in the column list) has had a chance to contribute to
// auto-tables before FROM is decided and rendered.
func compileSelect(d *compiler.Driver, s *compiler.State, n compiler.Node) (string, error) {
	sel := n.(*Select)

	restoreAutoTables := s.PushAutoTables(nil)
	defer restoreAutoTables()

	b := bufpool.Get()
	defer bufpool.Put(b)
	b.WriteString("SELECT ")
	if sel.Distinct {
		b.WriteString("DISTINCT ")
	}

	columns, err := d.Compile(sel.Columns)
	if err != nil {
		return "", err
	}
	b.WriteString(columns)

	var where, orderBy, groupBy string
	if sel.Where != nil {
		where, err = d.Compile(sel.Where)
		if err != nil {
			return "", err
		}
	}
	if sel.OrderBy != nil {
		orderBy, err = d.Compile(sel.OrderBy)
		if err != nil {
			return "", err
		}
	}
	if sel.GroupBy != nil {
		groupBy, err = d.Compile(sel.GroupBy)
		if err != nil {
			return "", err
		}
	}

	if hasTables(sel.Tables, sel.DefaultTables, s.AutoTables) {
		tables, err := resolveTables(d, sel.Tables, s.AutoTables, sel.DefaultTables, "select")
		if err != nil {
			return "", err
		}
		b.WriteString(" FROM ")
		b.WriteString(tables)
	}
	if sel.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if sel.OrderBy != nil {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	if sel.GroupBy != nil {
		b.WriteString(" GROUP BY ")
		b.WriteString(groupBy)
	}
	if sel.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(*sel.Limit))
	}
	if sel.Offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(*sel.Offset))
	}
	return b.String(), nil
}
