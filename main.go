package main

import (
	"fmt"
	"io/ioutil"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/llir/llvm/asm"
	"github.com/pontaoski/exprc/ast"
	"github.com/pontaoski/exprc/compiler"
	"github.com/pontaoski/exprc/config"
	"github.com/pontaoski/exprc/errors"
	"github.com/pontaoski/exprc/lexer"
	"github.com/pontaoski/exprc/llvmgen"
	"github.com/pontaoski/exprc/refeval"
	"github.com/pontaoski/exprc/sim"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func expression(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", cli.Exit("no expression provided", 2)
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

func logger(c *cli.Context) (*slog.Logger, error) {
	log, err := compiler.NewLogger(c.App.ErrWriter, c.String("log-level"))
	if err != nil {
		return nil, cli.Exit(err.Error(), 2)
	}
	return log, nil
}

// report prints diagnostics the way a compiler user expects to see them and
// passes every other error through.
func report(c *cli.Context, source string, err error) error {
	if d, ok := errors.As(err); ok {
		fmt.Fprintln(c.App.ErrWriter, errors.Render(source, d))
		return cli.Exit("", 1)
	}
	return err
}

// manifest loads the project manifest, if there is one, and applies the
// command line overrides.
func manifest(c *cli.Context) (config.Manifest, error) {
	m := config.Default("tmp")

	path := c.String("config")
	if path == "" {
		if found, ok := config.Find("."); ok {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return m, err
		}
		m = loaded
	}

	if c.IsSet("target") {
		m.Target = c.String("target")
	}
	if c.IsSet("entry") {
		m.Entry = c.String("entry")
	}
	if c.IsSet("output") {
		m.Output = c.String("output")
	}

	return m, m.Validate()
}

func simulate(c *cli.Context) (string, int64, error) {
	src, err := expression(c)
	if err != nil {
		return "", 0, err
	}
	log, err := logger(c)
	if err != nil {
		return "", 0, err
	}

	r, err := compiler.Compile(src, compiler.Options{Target: config.TargetRISCV64, Logger: log})
	if err != nil {
		return src, 0, report(c, src, err)
	}

	val, err := sim.Run(r.Program)
	return src, val, tracerr.Wrap(err)
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "exprc",
		Usage: "arithmetic expression compiler",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				EnvVars: []string{"EXPRC_LOG"},
			},
		},
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			if exit, ok := err.(cli.ExitCoder); ok {
				if msg := exit.Error(); msg != "" {
					fmt.Fprintln(context.App.ErrWriter, msg)
				}
				return
			}
			tracerr.PrintSourceColor(err)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a project manifest",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "yaml",
					},
				},
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 2)
					}

					path := config.DefaultFile
					if c.String("format") == "toml" {
						path = "exprc.toml"
					}
					if _, err := os.Stat(path); err == nil {
						return cli.Exit(path+" already exists", 1)
					}

					return config.Save(path, config.Default(name))
				},
			},
			{
				Name:      "build",
				Usage:     "compile an expression",
				ArgsUsage: "<expression>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "config",
					},
					&cli.StringFlag{
						Name: "output",
					},
					&cli.StringFlag{
						Name:  "target",
						Usage: strings.Join(config.Targets, ", "),
					},
					&cli.StringFlag{
						Name: "entry",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					src, err := expression(c)
					if err != nil {
						return err
					}
					m, err := manifest(c)
					if err != nil {
						return err
					}
					log, err := logger(c)
					if err != nil {
						return err
					}

					r, err := compiler.Compile(src, compiler.Options{
						Target: m.Target,
						Entry:  m.Entry,
						Logger: log,
					})
					if err != nil {
						return report(c, src, err)
					}

					if c.Bool("dump") {
						fmt.Fprint(c.App.Writer, r.Text)
						return nil
					}

					out := m.Output + config.Extension(m.Target)
					if dir := filepath.Dir(out); dir != "." {
						if err := os.MkdirAll(dir, 0755); err != nil {
							return tracerr.Wrap(err)
						}
					}
					return tracerr.Wrap(ioutil.WriteFile(out, []byte(r.Text), 0644))
				},
			},
			{
				Name:      "info",
				Usage:     "dump the build information of a compiled LLVM module",
				ArgsUsage: "<file.ll>",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						return cli.Exit("no module provided", 2)
					}

					m, err := asm.ParseFile(file)
					if err != nil {
						return tracerr.Wrap(err)
					}
					info, err := llvmgen.ReadInfo(m)
					if err != nil {
						return tracerr.Wrap(err)
					}

					repr.New(c.App.Writer).Println(info)
					return nil
				},
			},
			{
				Name:      "tokens",
				Usage:     "dump the tokens of an expression",
				ArgsUsage: "<expression>",
				Action: func(c *cli.Context) error {
					src, err := expression(c)
					if err != nil {
						return err
					}
					repr.New(c.App.Writer).Println(lexer.Tokenize(src))
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of an expression",
				ArgsUsage: "<expression>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "repr",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					src, err := expression(c)
					if err != nil {
						return err
					}
					log, err := logger(c)
					if err != nil {
						return err
					}

					_, tree, err := compiler.Front(src, log)
					if err != nil {
						return report(c, src, err)
					}

					if c.Bool("repr") {
						repr.New(c.App.Writer).Println(tree)
						return nil
					}
					fmt.Fprintln(c.App.Writer, ast.String(tree))
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "compile an expression and simulate the result",
				ArgsUsage: "<expression>",
				Action: func(c *cli.Context) error {
					_, val, err := simulate(c)
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, val)
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "compare the simulated result with direct evaluation",
				ArgsUsage: "<expression>",
				Action: func(c *cli.Context) error {
					src, got, err := simulate(c)
					if err != nil {
						return err
					}

					want, err := refeval.Eval(src)
					if err != nil {
						return tracerr.Wrap(err)
					}
					if got != want {
						return cli.Exit(fmt.Sprintf("mismatch: generated code returns %d, expected %d", got, want), 1)
					}

					fmt.Fprintf(c.App.Writer, "ok %d\n", got)
					return nil
				},
			},
		},
	}
}

// exitCode picks the process status for an error returned by the app.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if exit, ok := err.(cli.ExitCoder); ok {
		return exit.ExitCode()
	}
	return 1
}

func main() {
	os.Exit(exitCode(newApp().Run(os.Args)))
}
