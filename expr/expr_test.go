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

package expr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlcraft/sqlcraft/compiler"
	"github.com/sqlcraft/sqlcraft/expr"
)

func compile(t *testing.T, value any) (string, []any) {
	t.Helper()
	r := expr.NewRegistry()
	sqlText, params, err := r.Compile(value)
	require.NoError(t, err)
	return sqlText, params
}

func TestColumn_UnqualifiedRendersBare(t *testing.T) {
	sqlText, params := compile(t, expr.NewColumn("id", nil))
	assert.Equal(t, "id", sqlText)
	assert.Empty(t, params)
}

func TestColumn_QualifiedRendersTableDotName(t *testing.T) {
	sqlText, _ := compile(t, expr.NewColumn("id", "t"))
	assert.Equal(t, "t.id", sqlText)
}

func TestParam_RendersPlaceholderAndBindsValue(t *testing.T) {
	sqlText, params := compile(t, expr.NewParam(42))
	assert.Equal(t, "?", sqlText)
	assert.Equal(t, []any{42}, params)
}

func TestEq_WithValue_BindsParam(t *testing.T) {
	col := expr.NewColumn("a", nil)
	sqlText, params := compile(t, col.Eq(0))
	assert.Equal(t, "a = ?", sqlText)
	assert.Equal(t, []any{0}, params)
}

func TestEq_WithNil_RendersIsNull(t *testing.T) {
	col := expr.NewColumn("a", nil)
	sqlText, params := compile(t, col.Eq(nil))
	assert.Equal(t, "a IS NULL", sqlText)
	assert.Empty(t, params)
}

func TestNe_WithNil_RendersIsNotNull(t *testing.T) {
	col := expr.NewColumn("a", nil)
	sqlText, params := compile(t, col.Ne(nil))
	assert.Equal(t, "a IS NOT NULL", sqlText)
	assert.Empty(t, params)
}

func TestEq_WithNullLiteral_RendersIsNull(t *testing.T) {
	col := expr.NewColumn("a", nil)
	sqlText, _ := compile(t, expr.Eq(col, expr.Null{}))
	assert.Equal(t, "a IS NULL", sqlText)
}

func TestGt_WithNil_WrapsAsParamNotNull(t *testing.T) {
	col := expr.NewColumn("a", nil)
	sqlText, params := compile(t, col.Gt(nil))
	assert.Equal(t, "a > ?", sqlText, "unlike Eq/Ne, every other comparable wraps nil as a bound param")
	assert.Equal(t, []any{nil}, params)
}

func TestIn_RendersParenthesizedList(t *testing.T) {
	col := expr.NewColumn("a", "t")
	sqlText, params := compile(t, col.In(1, 2, 3))
	assert.Equal(t, "t.a IN (?, ?, ?)", sqlText)
	assert.Equal(t, []any{1, 2, 3}, params)
}

func TestNonAssociativity_SubLeftNested_NoParens(t *testing.T) {
	sqlText, _ := compile(t, expr.Sub(expr.Sub(expr.NewParam(1), expr.NewParam(2)), expr.NewParam(3)))
	assert.Equal(t, "? - ? - ?", sqlText)
}

func TestNonAssociativity_SubRightNested_Parens(t *testing.T) {
	sqlText, params := compile(t, expr.Sub(expr.NewParam(1), expr.Sub(expr.NewParam(2), expr.NewParam(3))))
	assert.Equal(t, "? - (? - ?)", sqlText)
	assert.Equal(t, []any{1, 2, 3}, params)
}

func TestNonAssociativity_DivAndMod(t *testing.T) {
	sqlText, _ := compile(t, expr.Div(expr.NewParam(1), expr.Div(expr.NewParam(2), expr.NewParam(3))))
	assert.Equal(t, "? / (? / ?)", sqlText)

	sqlText, _ = compile(t, expr.Mod(expr.NewParam(1), expr.Mod(expr.NewParam(2), expr.NewParam(3))))
	assert.Equal(t, "? % (? % ?)", sqlText)
}

func TestCompoundOper_AndOfThree(t *testing.T) {
	sqlText, params := compile(t, expr.And(
		expr.NewColumn("a", nil).Eq(1),
		expr.NewColumn("b", nil).Eq(2),
		expr.NewColumn("c", nil).Eq(3),
	))
	assert.Equal(t, "a = ? AND b = ? AND c = ?", sqlText)
	assert.Equal(t, []any{1, 2, 3}, params)
}

func TestPrecedence_AndBindsTighterThanOr_NoParens(t *testing.T) {
	sqlText, _ := compile(t, expr.Or(
		expr.NewColumn("a", nil).Eq(1),
		expr.And(expr.NewColumn("b", nil).Eq(2), expr.NewColumn("c", nil).Eq(3)),
	))
	assert.Equal(t, "a = ? OR b = ? AND c = ?", sqlText)
}

func TestPrecedence_OrUnderAnd_GetsParenthesized(t *testing.T) {
	sqlText, _ := compile(t, expr.And(
		expr.Or(expr.NewColumn("a", nil).Eq(1), expr.NewColumn("b", nil).Eq(2)),
		expr.NewColumn("c", nil).Eq(3),
	))
	assert.Equal(t, "(a = ? OR b = ?) AND c = ?", sqlText)
}

func TestFunc_CountEmpty_RendersStar(t *testing.T) {
	sqlText, _ := compile(t, expr.Count())
	assert.Equal(t, "COUNT(*)", sqlText)
}

func TestFunc_CountWithColumn(t *testing.T) {
	sqlText, _ := compile(t, expr.Count(expr.NewColumn("x", nil)))
	assert.Equal(t, "COUNT(x)", sqlText)
}

func TestFunc_MaxMinAvgSum(t *testing.T) {
	cases := []struct {
		node compiler.Node
		want string
	}{
		{expr.Max(expr.NewColumn("x", nil)), "MAX(x)"},
		{expr.Min(expr.NewColumn("x", nil)), "MIN(x)"},
		{expr.Avg(expr.NewColumn("x", nil)), "AVG(x)"},
		{expr.Sum(expr.NewColumn("x", nil)), "SUM(x)"},
	}
	for _, c := range cases {
		sqlText, _ := compile(t, c.node)
		assert.Equal(t, c.want, sqlText)
	}
}

func TestSuffix_AscDesc(t *testing.T) {
	sqlText, _ := compile(t, expr.Asc(expr.NewColumn("a", nil)))
	assert.Equal(t, "a ASC", sqlText)

	sqlText, _ = compile(t, expr.Desc(expr.NewColumn("a", nil)))
	assert.Equal(t, "a DESC", sqlText)
}

func TestRawString_PassesThroughVerbatim(t *testing.T) {
	sqlText, params := compile(t, "SELECT 1")
	assert.Equal(t, "SELECT 1", sqlText)
	assert.Empty(t, params)
}

func TestPlaceholderParameterAgreement(t *testing.T) {
	sel := &expr.Select{
		Columns: compiler.Sequence{expr.NewColumn("a", "t"), expr.NewColumn("b", "t")},
		Where: expr.And(
			expr.NewColumn("a", "t").Eq(1),
			expr.NewColumn("b", "t").In(2, 3, 4),
		),
	}
	sqlText, params := compile(t, sel)
	assert.Equal(t, strings.Count(sqlText, "?"), len(params))
	assert.Equal(t, []any{1, 2, 3, 4}, params)
}

func TestSelect_NoTables_OmitsFromClause(t *testing.T) {
	sel := &expr.Select{Columns: "*"}
	sqlText, _ := compile(t, sel)
	assert.Equal(t, "SELECT *", sqlText)
}

func TestSelect_Distinct(t *testing.T) {
	sel := &expr.Select{Columns: "*", Tables: "t", Distinct: true}
	sqlText, _ := compile(t, sel)
	assert.Equal(t, "SELECT DISTINCT * FROM t", sqlText)
}

func TestSelect_LimitOffset(t *testing.T) {
	limit, offset := 10, 20
	sel := &expr.Select{Columns: "*", Tables: "t", Limit: &limit, Offset: &offset}
	sqlText, _ := compile(t, sel)
	assert.Equal(t, "SELECT * FROM t LIMIT 10 OFFSET 20", sqlText)
}

func TestInsert_OmitsColumnTablesButKeepsAutoTable(t *testing.T) {
	ins := &expr.Insert{
		Columns: compiler.Sequence{expr.NewColumn("a", "t"), expr.NewColumn("b", "t")},
		Values:  compiler.Sequence{expr.NewParam(1), expr.NewParam(2)},
	}
	sqlText, params := compile(t, ins)
	assert.Equal(t, "INSERT INTO t (a, b) VALUES (?, ?)", sqlText)
	assert.Equal(t, []any{1, 2}, params)
}

func TestUpdate_SetInOrder(t *testing.T) {
	upd := &expr.Update{
		Set: []expr.Assignment{
			{Column: expr.NewColumn("a", "t"), Value: expr.NewParam(5)},
			{Column: expr.NewColumn("b", "t"), Value: expr.NewParam(6)},
		},
		Where: expr.NewColumn("c", "t").Eq(7),
	}
	sqlText, params := compile(t, upd)
	assert.Equal(t, "UPDATE t SET a=?, b=? WHERE t.c = ?", sqlText)
	assert.Equal(t, []any{5, 6, 7}, params)
}

func TestDelete_ResolvesTableAfterWhere(t *testing.T) {
	del := &expr.Delete{Where: expr.NewColumn("id", "t").Eq(1)}
	sqlText, params := compile(t, del)
	assert.Equal(t, "DELETE FROM t WHERE t.id = ?", sqlText)
	assert.Equal(t, []any{1}, params)
}

func TestMissingTable_FailsWithCompileError(t *testing.T) {
	ins := &expr.Insert{
		Columns: compiler.Sequence{expr.NewColumn("a", nil)},
		Values:  compiler.Sequence{expr.NewParam(1)},
	}
	r := expr.NewRegistry()
	_, _, err := r.Compile(ins)
	require.Error(t, err)
	assert.ErrorIs(t, err, compiler.ErrMissingTable)
}

func TestTableResolution_DefaultUsedWhenNoExplicitOrAuto(t *testing.T) {
	del := &expr.Delete{DefaultTable: "fallback"}
	sqlText, _ := compile(t, del)
	assert.Equal(t, "DELETE FROM fallback", sqlText)
}

func TestTableResolution_AutoTablesDeduplicatedInFirstSeenOrder(t *testing.T) {
	sel := &expr.Select{
		Columns: compiler.Sequence{expr.NewColumn("a", "t"), expr.NewColumn("b", "t"), expr.NewColumn("c", "u")},
	}
	sqlText, _ := compile(t, sel)
	assert.Equal(t, "SELECT t.a, t.b, u.c FROM t, u", sqlText)
}
