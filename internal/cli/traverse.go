// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splex/simplex"
	"github.com/katalvlaran/splex/simplextree"
)

// traverseOpts holds the flags of the traverse command.
type traverseOpts struct {
	order   string // traversal tag, e.g. "preorder" or "cofaces"
	simplex string // σ as "0,1,2" for faces, cofaces, coface_roots and link
	dim     int    // k for k_skeleton and k_simplices; -1 when unset
	expand  int    // expand the tree to this dimension first; -1 when unset
}

// traverseCommand walks the simplex tree of a complex.
func (c *CLI) traverseCommand() *cobra.Command {
	opts := traverseOpts{order: simplextree.Preorder.String(), dim: -1, expand: -1}

	cmd := &cobra.Command{
		Use:   "traverse [file]",
		Short: "Traverse the simplex tree of a complex",
		Long: `Traverse the simplex tree of a complex in one of its orders:
preorder, level_order, faces, cofaces, coface_roots, k_skeleton,
k_simplices, maximal or link.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraverse(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.order, "order", opts.order, "traversal order")
	cmd.Flags().StringVar(&opts.simplex, "simplex", "", "simplex σ as comma-separated vertices")
	cmd.Flags().IntVarP(&opts.dim, "dim", "k", opts.dim, "dimension k")
	cmd.Flags().IntVar(&opts.expand, "expand", opts.expand, "expand to the flag complex of this dimension first")

	return cmd
}

func runTraverse(ctx context.Context, w io.Writer, path string, opts traverseOpts) error {
	logger := loggerFromContext(ctx)

	order, err := simplextree.ParseOrder(opts.order)
	if err != nil {
		return err
	}
	in, err := readInput(path)
	if err != nil {
		return err
	}
	st, err := treeFrom(in)
	if err != nil {
		return err
	}
	if opts.expand >= 0 {
		if err := st.Expand(opts.expand); err != nil {
			return err
		}
		logger.Debug("expanded tree", "dim", opts.expand, "shape", formatInts(st.NSimplices()))
	}

	var topts []simplextree.TraverseOption
	if opts.simplex != "" {
		sigma, err := parseSimplex(opts.simplex)
		if err != nil {
			return err
		}
		topts = append(topts, simplextree.WithSimplex(sigma))
	}
	if opts.dim >= 0 {
		topts = append(topts, simplextree.WithDim(opts.dim))
	}

	n := 0
	err = st.Traverse(order, func(s simplex.Simplex) bool {
		printLine(w, s.String())
		n++
		return true
	}, topts...)
	if err != nil {
		return err
	}
	logger.Debug("traversal done", "order", order, "visited", n)

	return nil
}
