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

package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sqlcraft/sqlcraft/compiler"
	"github.com/sqlcraft/sqlcraft/expr"
)

var verbose bool

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sqlcraft",
		Short: "Build and render SQL from the sqlcraft expression engine",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each compiler step to stderr")
	root.AddCommand(newSelectCommand(), newExplainCommand())
	return root
}

func newLoggerIfVerbose() *logrus.Logger {
	if !verbose {
		return nil
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func newSelectCommand() *cobra.Command {
	var (
		table   string
		columns []string
		equals  []string
		limit   int
		offset  int
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Build and render a SELECT statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := expr.NewRegistry()
			registry.Logger = newLoggerIfVerbose()

			var tableArg any
			if cmd.Flags().Changed("table") {
				tableArg = table
			}

			cols := make(compiler.Sequence, len(columns))
			for i, c := range columns {
				cols[i] = expr.NewColumn(c, tableArg)
			}

			conds := make([]any, 0, len(equals))
			for _, pair := range equals {
				k, v, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid --where %q, want column=value", pair)
				}
				conds = append(conds, expr.NewColumn(k, tableArg).Eq(v))
			}
			var where any
			switch len(conds) {
			case 0:
			case 1:
				where = conds[0]
			default:
				where = expr.And(conds...)
			}

			sel := &expr.Select{Columns: cols, Where: where}
			if cmd.Flags().Changed("limit") {
				sel.Limit = &limit
			}
			if cmd.Flags().Changed("offset") {
				sel.Offset = &offset
			}

			sqlText, params, err := registry.Compile(sel)
			if err != nil {
				return err
			}
			fmt.Println(sqlText)
			fmt.Println(params)
			return nil
		},
	}
	cmd.Flags().StringVar(&table, "table", "", "default table for columns and WHERE")
	cmd.Flags().StringSliceVar(&columns, "columns", []string{"*"}, "columns to select")
	cmd.Flags().StringSliceVar(&equals, "where", nil, "column=value equality conditions, ANDed together")
	cmd.Flags().IntVar(&limit, "limit", 0, "LIMIT value")
	cmd.Flags().IntVar(&offset, "offset", 0, "OFFSET value")
	return cmd
}

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Print the default registry's precedence table",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []compiler.Kind{
				compiler.KindSelect, compiler.KindOr, compiler.KindAnd,
				compiler.KindEq, compiler.KindLShift, compiler.KindRShift,
				compiler.KindAdd, compiler.KindSub, compiler.KindMul,
				compiler.KindDiv, compiler.KindMod,
			}
			registry := expr.NewRegistry()
			sort.Slice(kinds, func(i, j int) bool {
				return registry.PrecedenceOf(kinds[i]) < registry.PrecedenceOf(kinds[j])
			})
			for _, k := range kinds {
				fmt.Printf("%-12s %s\n", k, strconv.FormatFloat(registry.PrecedenceOf(k), 'g', -1, 64))
			}
			return nil
		},
	}
}
