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

// Package bufpool pools strings.Builder values for the statement
// handlers in package expr, which each build one SQL fragment per
// compile call and would otherwise allocate a fresh builder every time.
package bufpool

import (
	"strings"
	"sync"
)

var pool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}

// Get returns a reset strings.Builder from the pool.
func Get() *strings.Builder {
	return pool.Get().(*strings.Builder)
}

// Put resets builder and returns it to the pool.
func Put(b *strings.Builder) {
	b.Reset()
	pool.Put(b)
}
