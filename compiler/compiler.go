// Package compiler runs the whole pipeline: scan, parse and hand the tree to
// one of the back ends.
package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/repr"
	"github.com/llir/llvm/ir"
	"github.com/pontaoski/exprc/ast"
	"github.com/pontaoski/exprc/codegen"
	"github.com/pontaoski/exprc/config"
	"github.com/pontaoski/exprc/gogen"
	"github.com/pontaoski/exprc/lexer"
	"github.com/pontaoski/exprc/llvmgen"
	"github.com/pontaoski/exprc/parser"
	"github.com/pontaoski/exprc/types"
	"github.com/ztrue/tracerr"
)

type Options struct {
	Target string
	Entry  string
	Logger *slog.Logger
}

type Result struct {
	Source string
	Tokens []types.Token
	Tree   *ast.Tree

	// Program is set for the riscv64 and go targets, Module for llvm.
	Program *codegen.Program
	Module  *ir.Module

	Text string
}

// NewLogger returns a text logger on w for one of debug, info, warn or
// error.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (o Options) withDefaults() Options {
	if o.Target == "" {
		o.Target = config.TargetRISCV64
	}
	if o.Entry == "" {
		o.Entry = "main"
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Front scans and parses source.
func Front(source string, log *slog.Logger) ([]types.Token, *ast.Tree, error) {
	tokens := lexer.Tokenize(source)
	log.Debug("tokenize", "count", len(tokens), "tokens", repr.String(tokens))

	tree, err := parser.Parse(source, tokens)
	if err != nil {
		log.Debug("parse failed", "error", err.Error())
		return tokens, nil, err
	}
	log.Debug("parse", "tree", ast.String(tree), "nodes", tree.Size(), "height", tree.Height())

	return tokens, tree, nil
}

func Compile(source string, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With("target", opts.Target)

	tokens, tree, err := Front(source, log)
	if err != nil {
		return nil, err
	}

	r := &Result{Source: source, Tokens: tokens, Tree: tree}

	switch opts.Target {
	case config.TargetRISCV64:
		r.Program = codegen.Generate(tree, opts.Entry)
		r.Text = r.Program.String()
	case config.TargetGo:
		r.Program = codegen.Generate(tree, opts.Entry)
		r.Text, err = gogen.Generate(r.Program, gogen.Settings{Source: source})
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
	case config.TargetLLVM:
		r.Module = llvmgen.Generate(tree, llvmgen.Options{Entry: opts.Entry, Source: source})
		r.Text = r.Module.String()
	default:
		return nil, tracerr.Errorf("unknown target %q", opts.Target)
	}

	if r.Program != nil {
		log.Debug("codegen", "instructions", len(r.Program.Instructions), "max_depth", r.Program.MaxDepth)
	}
	log.Info("compiled", "source", source, "bytes", len(r.Text))

	return r, nil
}
