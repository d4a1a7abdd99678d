// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splex/boundary"
	"github.com/katalvlaran/splex/complex"
	"github.com/katalvlaran/splex/filtration"
	"github.com/katalvlaran/splex/simplex"
)

// Filtration keys accepted by --key.
const (
	keyNone  = ""      // plain complex order
	keyIndex = "index" // enumeration order
	keyDim   = "dim"   // dimension
	keyMax   = "max"   // largest vertex
)

// boundaryOpts holds the flags of the boundary command.
type boundaryOpts struct {
	p         int    // dimension of the column simplices
	backend   string // overrides the backend named in the input file
	key       string // filtration key, or empty for the plain complex
	laplacian bool   // print L_p = ∂_{p+1}·∂_{p+1}ᵀ instead
}

// boundaryCommand prints the signed boundary matrix ∂_p.
func (c *CLI) boundaryCommand() *cobra.Command {
	opts := boundaryOpts{p: 1}

	cmd := &cobra.Command{
		Use:   "boundary [file]",
		Short: "Print the signed boundary matrix of a complex",
		Long: `Print the boundary matrix ∂_p whose rows are the (p-1)-simplices and whose
columns are the p-simplices. With --key the complex is first turned into a
filtration and rows and columns follow filtration order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoundary(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().IntVarP(&opts.p, "dim", "p", opts.p, "dimension of the column simplices")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "storage backend: set, tree or rank")
	cmd.Flags().StringVar(&opts.key, "key", keyNone, "filtration key: index, dim or max")
	cmd.Flags().BoolVar(&opts.laplacian, "laplacian", false, "print the up-Laplacian L_p = ∂_{p+1}·∂_{p+1}ᵀ")

	return cmd
}

func runBoundary(ctx context.Context, w io.Writer, path string, opts boundaryOpts) error {
	logger := loggerFromContext(ctx)

	in, err := readInput(path)
	if err != nil {
		return err
	}
	cx, err := complexFrom(in, opts.backend)
	if err != nil {
		return err
	}
	src, err := sourceFor(cx, opts.key)
	if err != nil {
		return err
	}
	logger.Debug("boundary source", "key", opts.key, "dim", src.Dim())

	if opts.laplacian {
		l, err := boundary.UpLaplacian(src, opts.p)
		if err != nil {
			return err
		}
		printTitle(w, fmt.Sprintf("L_%d (%d×%d)", opts.p, l.Rows(), l.Cols()))
		printLine(w, strings.TrimSuffix(l.String(), "\n"))
		return nil
	}

	m, err := boundary.Matrix(src, opts.p)
	if err != nil {
		return err
	}
	printTitle(w, fmt.Sprintf("∂_%d (%d×%d, %d nonzero)", opts.p, m.Rows(), m.Cols(), m.NNZ()))
	if m.Rows() > 0 && m.Cols() > 0 {
		printLine(w, strings.TrimSuffix(m.String(), "\n"))
	}

	return nil
}

// sourceFor wraps cx in the filtration named by key.
func sourceFor(cx complex.Complex, key string) (boundary.Source, error) {
	switch key {
	case keyNone:
		return cx, nil
	case keyIndex:
		return filtration.Enumerate(cx, filtration.Set)
	case keyDim:
		return filtration.FromComplex(cx, simplex.Simplex.Dim, filtration.Set)
	case keyMax:
		return filtration.FromComplex(cx, func(s simplex.Simplex) int {
			v, _ := s.Last()
			return v
		}, filtration.Set)
	default:
		return nil, fmt.Errorf("unknown filtration key %q (want %s, %s or %s)", key, keyIndex, keyDim, keyMax)
	}
}
