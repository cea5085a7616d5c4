package llvmgen

import (
	"strings"
	"testing"

	"github.com/pontaoski/exprc/ast"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	m := Generate(ast.NewNumber("42"), Options{Entry: "main", Source: "42"})

	require.Len(t, m.Funcs, 1)
	require.Equal(t, "main", m.Funcs[0].Name())

	out := m.String()
	require.Contains(t, out, "define i32 @main()")
	require.Contains(t, out, "trunc i64 42 to i32")
	require.NotContains(t, out, "add")
}

func TestGenerateOperators(t *testing.T) {
	tree := ast.NewBinary("-",
		ast.NewBinary("+", ast.NewNumber("1"), ast.NewBinary("*", ast.NewNumber("2"), ast.NewNumber("3"))),
		ast.NewBinary("/", ast.NewNumber("8"), ast.NewNumber("4")),
	)
	m := Generate(tree, Options{Entry: "main", Source: "1+2*3-8/4"})

	out := m.String()
	for _, op := range []string{"add i64", "sub i64", "mul i64", "sdiv i64 8, 4"} {
		require.Contains(t, out, op)
	}

	// the divide is on the right of the root, so it is emitted first
	require.Less(t, strings.Index(out, "sdiv"), strings.Index(out, "mul"))
	require.Len(t, m.Funcs[0].Blocks, 1)
}

func TestInfoRoundTrip(t *testing.T) {
	m := Generate(ast.NewNumber("7"), Options{Entry: "main", Source: " 7 "})

	info, err := ReadInfo(m)
	require.NoError(t, err)
	require.Equal(t, Info{Source: " 7 ", Target: "llvm"}, info)
	require.Contains(t, m.String(), "@__exprc_info")
}
