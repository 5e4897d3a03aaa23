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

/*
Package sqlcraft is a composable SQL expression engine: build SQL
statements as trees of typed value objects and render each tree to a
parameterized SQL string plus an ordered list of bound parameter
values.

Basic usage:

	id := expr.NewColumn("id", "t")
	name := expr.NewColumn("name", "t")
	q := &expr.Select{
		Columns: compiler.Sequence{id, name},
		Where:   id.Eq(3),
	}
	sqlText, params, err := sqlcraft.Compile(q)
	if err != nil {
		// handle error
	}
	fmt.Println(sqlText, params) // SELECT t.id, t.name FROM t WHERE t.id = ? [3]

Package expr defines the node kinds (Column, Param, the operator and
function families, and the four statement kinds) together with their
default handlers. Package compiler is the dispatch engine underneath:
a mutable, cloneable registry of handlers and precedences, and the
recursive-descent driver that applies operator-precedence-aware
parenthesization while rendering a tree.

Outer concerns — executing the rendered SQL, mapping rows back to Go
values, connection pooling, transactions — are not this package's job;
it produces (sql, params) and stops there.

For more information and examples, visit: https://github.com/sqlcraft/sqlcraft
*/
package sqlcraft
