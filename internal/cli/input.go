// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

// inputFile is the TOML layout shared by all commands.
type inputFile struct {
	Backend   string      `toml:"backend"`
	Simplices [][]int     `toml:"simplices"`
	Points    [][]float64 `toml:"points"`
}

// readInput decodes a TOML input file.
func readInput(path string) (*inputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in inputFile
	if err := toml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &in, nil
}

// complexFrom builds the complex described by in; override, when set,
// replaces the backend named in the file.
func complexFrom(in *inputFile, override string) (complex.Complex, error) {
	tag := in.Backend
	if override != "" {
		tag = override
	}
	if tag == "" {
		tag = complex.Tree.String()
	}
	b, err := complex.ParseBackend(tag)
	if err != nil {
		return nil, err
	}
	return complex.FromTuples(b, in.Simplices)
}

// treeFrom builds a simplex tree from in.
func treeFrom(in *inputFile) (*simplextree.Tree, error) {
	st := simplextree.New()
	if err := st.InsertTuples(in.Simplices); err != nil {
		return nil, err
	}
	return st, nil
}

// parseSimplex reads "0,1,2" into a simplex.
func parseSimplex(s string) (simplex.Simplex, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return simplex.Simplex{}, nil
	}
	fields := strings.Split(s, ",")
	vs := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return simplex.Simplex{}, fmt.Errorf("simplex %q: %w", s, err)
		}
		vs[i] = v
	}
	return simplex.New(vs...)
}
