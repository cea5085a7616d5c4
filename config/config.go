// Package config reads and writes the exprc project manifest.
//
// A manifest is YAML (exprc.yaml, exprc.yml) or TOML (exprc.toml); the format
// follows the file extension.
package config

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

const DefaultFile = "exprc.yaml"

const (
	TargetRISCV64 = "riscv64"
	TargetLLVM    = "llvm"
	TargetGo      = "go"
)

var Targets = []string{TargetRISCV64, TargetLLVM, TargetGo}

// Extension is the file extension of the output written for target.
func Extension(target string) string {
	switch target {
	case TargetLLVM:
		return ".ll"
	case TargetGo:
		return ".go"
	}
	return ".s"
}

type Manifest struct {
	Package string `yaml:"package" toml:"package"`
	Target  string `yaml:"target,omitempty" toml:"target,omitempty"`
	Entry   string `yaml:"entry,omitempty" toml:"entry,omitempty"`
	Output  string `yaml:"output,omitempty" toml:"output,omitempty"`
}

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	}
	return FormatYAML
}

func Default(name string) Manifest {
	return Manifest{
		Package: name,
		Target:  TargetRISCV64,
		Entry:   "main",
		Output:  name,
	}
}

// withDefaults fills in whatever the manifest left out.
func (m Manifest) withDefaults() Manifest {
	if m.Package == "" {
		m.Package = "tmp"
	}
	d := Default(m.Package)
	if m.Target == "" {
		m.Target = d.Target
	}
	if m.Entry == "" {
		m.Entry = d.Entry
	}
	if m.Output == "" {
		m.Output = d.Output
	}
	return m
}

func (m Manifest) Validate() error {
	for _, t := range Targets {
		if m.Target == t {
			if m.Entry == "" {
				return fmt.Errorf("manifest: empty entry label")
			}
			return nil
		}
	}
	return fmt.Errorf("manifest: unknown target %q, expected one of %s", m.Target, strings.Join(Targets, ", "))
}

func Decode(data []byte, format Format) (m Manifest, err error) {
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	default:
		err = yaml.UnmarshalStrict(data, &m)
	}
	if err != nil {
		return Manifest{}, tracerr.Wrap(fmt.Errorf("manifest: %s parse error: %w", format, err))
	}

	m = m.withDefaults()
	if err := m.Validate(); err != nil {
		return Manifest{}, tracerr.Wrap(err)
	}
	return m, nil
}

func Encode(m Manifest, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, tracerr.Wrap(err)
		}
		return buf.Bytes(), nil
	default:
		out, err := yaml.Marshal(m)
		return out, tracerr.Wrap(err)
	}
}

func Load(path string) (Manifest, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Manifest{}, tracerr.Wrap(err)
	}
	return Decode(data, detectFormat(path))
}

func Save(path string, m Manifest) error {
	out, err := Encode(m, detectFormat(path))
	if err != nil {
		return err
	}
	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}

// Find returns the first manifest present in dir.
func Find(dir string) (string, bool) {
	for _, name := range []string{DefaultFile, "exprc.yml", "exprc.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
