package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pontaoski/exprc/config"
	"github.com/stretchr/testify/require"
)

func TestBuildWritesAssembly(t *testing.T) {
	out := filepath.Join(t.TempDir(), "calc")

	err := newApp().Run([]string{"exprc", "build", "--output", out, "1-2+3"})
	require.NoError(t, err)

	data, err := ioutil.ReadFile(out + ".s")
	require.NoError(t, err)
	require.Contains(t, string(data), "main:\n")
	require.Contains(t, string(data), "  add a0, a0, a1\n")
}

func TestBuildLLVM(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "calc")

	err := newApp().Run([]string{"exprc", "build", "--target", "llvm", "--entry", "calc", "--output", out, "2", "*", "21"})
	require.NoError(t, err)

	data, err := ioutil.ReadFile(out + ".ll")
	require.NoError(t, err)
	require.Contains(t, string(data), "@calc()")
}

func TestInitAndBuildFromManifest(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, newApp().Run([]string{"exprc", "init", "--format", "toml", "calc"}))

	m, err := config.Load("exprc.toml")
	require.NoError(t, err)
	require.Equal(t, config.Default("calc"), m)

	require.NoError(t, newApp().Run([]string{"exprc", "build", "--target", "go", "7/2"}))
	data, err := ioutil.ReadFile("calc.go")
	require.NoError(t, err)
	require.Contains(t, string(data), "func main()")
}

func TestInfoReadsBuiltModule(t *testing.T) {
	out := filepath.Join(t.TempDir(), "calc")
	require.NoError(t, newApp().Run([]string{"exprc", "build", "--target", "llvm", "--output", out, "2 * 21"}))

	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout
	require.NoError(t, app.Run([]string{"exprc", "info", out + ".ll"}))

	require.Contains(t, stdout.String(), "llvmgen.Info{")
	require.Contains(t, stdout.String(), `Source: "2 * 21"`)
	require.Contains(t, stdout.String(), `Target: "llvm"`)
}

func TestInfoWithoutModule(t *testing.T) {
	var stderr bytes.Buffer
	app := newApp()
	app.ErrWriter = &stderr

	err := app.Run([]string{"exprc", "info"})
	require.Error(t, err)
	require.Equal(t, 2, exitCode(err))
	require.Equal(t, "no module provided\n", stderr.String())
}

func TestBuildReportsDiagnostic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1+s", "1+s\n  ^ invalid token\n"},
		{"1++1", "1++1\n  ^ expected a number\n"},
	}

	for _, tt := range tests {
		var stderr bytes.Buffer
		app := newApp()
		app.ErrWriter = &stderr

		err := app.Run([]string{"exprc", "build", "--dump", tt.src})
		require.Error(t, err)
		require.Equal(t, 1, exitCode(err))
		require.Equal(t, tt.want, stderr.String())
	}
}

func TestRunAndCheck(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	require.NoError(t, app.Run([]string{"exprc", "run", "112-22+33"}))
	require.NoError(t, app.Run([]string{"exprc", "check", "2+3*4"}))
	require.Equal(t, "123\nok 14\n", stdout.String())
}
