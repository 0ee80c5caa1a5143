// SPDX-License-Identifier: MIT

// Package sysfile reads linear systems from YAML documents:
//
//	name: two lines
//	epsilon: 1.0e-10   # optional, linsys.DefaultEpsilon
//	precision: 30      # optional, linsys.DefaultPrecision
//	equations:
//	  - normal: [1, 1]
//	    constant: 1
//	  - normal: [0, 1]
//	    constant: "2"
//
// Coefficients are decoded as text and parsed with shopspring/decimal, so
// 0.786 stays exactly 0.786.
package sysfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/hyperplane"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/tolerance"
)

// MaxFileSize caps the size of a system document.
const MaxFileSize = 1 << 20

var (
	// ErrNoEquations is returned for a document without equations.
	ErrNoEquations = errors.New("sysfile: no equations")

	// ErrInvalidEquation wraps a coefficient or constant that does not parse.
	ErrInvalidEquation = errors.New("sysfile: invalid equation")

	// ErrInvalidPolicy wraps an out-of-range epsilon or precision.
	ErrInvalidPolicy = errors.New("sysfile: invalid numeric policy")

	// ErrTooLarge is returned for documents above MaxFileSize.
	ErrTooLarge = errors.New("sysfile: file too large")
)

// File is one decoded system document.
type File struct {
	Name      string     `yaml:"name"`
	Epsilon   float64    `yaml:"epsilon,omitempty"`
	Precision int32      `yaml:"precision,omitempty"`
	Equations []Equation `yaml:"equations"`
}

// Equation is normal·x = constant with coefficients kept as written.
type Equation struct {
	Normal   []string `yaml:"normal,flow"`
	Constant string   `yaml:"constant"`
}

// Decode reads one YAML document from r. At most MaxFileSize bytes are read,
// so pipes and stdin are bounded too. Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return File{}, fmt.Errorf("sysfile: read: %w", err)
	}
	if len(data) > MaxFileSize {
		return File{}, fmt.Errorf("sysfile: more than %d bytes: %w", MaxFileSize, ErrTooLarge)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("sysfile: decode: %w", err)
	}
	if len(f.Equations) == 0 {
		return File{}, ErrNoEquations
	}

	return f, nil
}

// Load decodes the file at path. An empty Name defaults to the file's base
// name without extension.
func Load(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("sysfile: %w", err)
	}
	if info.Size() > MaxFileSize {
		return File{}, fmt.Errorf("%s: %d bytes: %w", path, info.Size(), ErrTooLarge)
	}
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("sysfile: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = base[:len(base)-len(filepath.Ext(base))]
	}

	return f, nil
}

// Options translates the document's numeric settings into engine options.
// Zero values mean "use the engine default".
func (f File) Options() ([]linsys.Option, error) {
	eps, prec := f.Epsilon, f.Precision
	if eps == 0 {
		eps = linsys.DefaultEpsilon
	}
	if prec == 0 {
		prec = linsys.DefaultPrecision
	}
	if _, err := tolerance.NewPolicy(eps, prec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPolicy, err)
	}

	return []linsys.Option{linsys.WithEpsilon(eps), linsys.WithPrecision(prec)}, nil
}

// Hyperplanes parses every equation.
func (f File) Hyperplanes() ([]hyperplane.Equation, error) {
	out := make([]hyperplane.Equation, len(f.Equations))
	for i, e := range f.Equations {
		h, err := hyperplane.FromStrings(e.Normal, e.Constant)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidEquation, i+1, err)
		}
		out[i] = h
	}

	return out, nil
}

// System builds the linear system. opts are applied after the document's own
// settings, so callers can override them.
func (f File) System(opts ...linsys.Option) (*linsys.System, error) {
	eqs, err := f.Hyperplanes()
	if err != nil {
		return nil, err
	}
	own, err := f.Options()
	if err != nil {
		return nil, err
	}

	return linsys.New(eqs, append(own, opts...)...)
}
