package compiler

import (
	"bytes"
	"testing"

	"github.com/pontaoski/exprc/errors"
	"github.com/pontaoski/exprc/sim"
	"github.com/stretchr/testify/require"
)

func TestCompileRISCV(t *testing.T) {
	r, err := Compile("1-2+3", Options{})
	require.NoError(t, err)

	require.Len(t, r.Tokens, 5)
	require.Nil(t, r.Module)
	require.Equal(t, "  .global main\nmain:\n", r.Text[:len("  .global main\nmain:\n")])
	require.Contains(t, r.Text, "  ret\n")

	got, err := sim.Run(r.Program)
	require.NoError(t, err)
	require.Equal(t, int64(2), got)
}

func TestCompileTargets(t *testing.T) {
	r, err := Compile("6*7", Options{Target: "llvm", Entry: "answer"})
	require.NoError(t, err)
	require.NotNil(t, r.Module)
	require.Nil(t, r.Program)
	require.Contains(t, r.Text, "define i32 @answer()")

	r, err = Compile("6*7", Options{Target: "go"})
	require.NoError(t, err)
	require.NotNil(t, r.Program)
	require.Contains(t, r.Text, "package main")

	_, err = Compile("6*7", Options{Target: "wasm"})
	require.Error(t, err)
}

func TestCompileDiagnostics(t *testing.T) {
	_, err := Compile("1+s", Options{})
	d, ok := errors.As(err)
	require.True(t, ok)
	require.Equal(t, 2, d.Index())
	require.Equal(t, "invalid token", d.Message())
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "debug")
	require.NoError(t, err)

	_, err = Compile("1 + 2", Options{Logger: log})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "msg=tokenize")
	require.Contains(t, out, "msg=parse")
	require.Contains(t, out, "msg=codegen")
	require.Contains(t, out, "msg=compiled")
	require.Contains(t, out, "target=riscv64")

	_, err = NewLogger(&buf, "loud")
	require.Error(t, err)
}
