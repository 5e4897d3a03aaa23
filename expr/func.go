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

// Func is a named function call: NAME(arg1, arg2, ...). Count, Max,
// Min, Avg, and Sum are specializations sharing this shape; Count
// additionally renders COUNT(*) for an empty argument list (see
// compileCount), so it registers its own handler instead of falling
// back to Func's.
type Func struct {
	Comparable
	Name string
	Args compiler.Sequence
	kind compiler.Kind
}

func newFunc(kind compiler.Kind, name string, args ...any) *Func {
	f := &Func{Name: name, Args: compiler.Sequence(wrapAll(args)), kind: kind}
	f.bind(f)
	return f
}

// Kind implements compiler.Node.
func (f *Func) Kind() compiler.Kind { return f.kind }

// NewFunc builds an arbitrary named function call, for callers whose
// SQL dialect needs a function this package has no dedicated
// constructor for.
func NewFunc(name string, args ...any) *Func {
	return newFunc(compiler.KindFunc, name, args...)
}

// Count builds COUNT(args...), or COUNT(*) when args is empty.
func Count(args ...any) *Func {
	return newFunc(compiler.KindCount, "COUNT", args...)
}

// Max builds MAX(args...).
func Max(args ...any) *Func {
	return newFunc(compiler.KindMax, "MAX", args...)
}

// Min builds MIN(args...).
func Min(args ...any) *Func {
	return newFunc(compiler.KindMin, "MIN", args...)
}

// Avg builds AVG(args...).
func Avg(args ...any) *Func {
	return newFunc(compiler.KindAvg, "AVG", args...)
}

// Sum builds SUM(args...).
func Sum(args ...any) *Func {
	return newFunc(compiler.KindSum, "SUM", args...)
}

func compileFunc(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	f := n.(*Func)
	args, err := d.Compile(f.Args)
	if err != nil {
		return "", err
	}
	return f.Name + "(" + args + ")", nil
}

func compileCount(d *compiler.Driver, _ *compiler.State, n compiler.Node) (string, error) {
	f := n.(*Func)
	if len(f.Args) == 0 {
		return "COUNT(*)", nil
	}
	args, err := d.Compile(f.Args)
	if err != nil {
		return "", err
	}
	return "COUNT(" + args + ")", nil
}
