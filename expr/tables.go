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
)

// hasTables reports whether a statement has any way to resolve its
// table clause: explicit tables, a default, or tables already
// auto-collected in state. Select uses this to decide whether to emit
// a FROM clause at all.
func hasTables(explicit, deflt any, auto []any) bool {
	return explicit != nil || deflt != nil || len(auto) > 0
}

// resolveTables implements the table-resolution order shared by
// Select's FROM, Insert's INTO, Update's table, and Delete's FROM:
//
//  1. explicit tables, if given.
//  2. the auto-collected table list, deduplicated preserving
//     first-seen order and joined by ", ".
//  3. deflt, if given.
//  4. failure: ErrMissingTable.
//
// statement names the caller for the error message ("select",
// "insert", ...).
func resolveTables(d *compiler.Driver, explicit any, auto []any, deflt any, statement string) (string, error) {
	if explicit != nil {
		return d.Compile(explicit)
	}
	if len(auto) > 0 {
		seen := make(map[string]bool, len(auto))
		tables := make([]string, 0, len(auto))
		for _, t := range auto {
			rendered, err := d.Compile(t)
			if err != nil {
				return "", err
			}
			if !seen[rendered] {
				seen[rendered] = true
				tables = append(tables, rendered)
			}
		}
		return strings.Join(tables, ", "), nil
	}
	if deflt != nil {
		return d.Compile(deflt)
	}
	return "", missingTableError(statement)
}
