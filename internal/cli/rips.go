// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splex/filtration"
	"github.com/katalvlaran/splex/geometry"
)

const defaultRipsDim = 2

// ripsOpts holds the flags of the rips command.
type ripsOpts struct {
	radius  float64 // ball radius; the enclosing radius when unset
	dim     int     // maximum simplex dimension
	backend string  // filtration backend: set or rank
}

// ripsCommand builds the Rips filtration of a point cloud.
func (c *CLI) ripsCommand() *cobra.Command {
	opts := ripsOpts{dim: defaultRipsDim, backend: filtration.Set.String()}

	cmd := &cobra.Command{
		Use:   "rips [file]",
		Short: "Build the Rips filtration of a point cloud",
		Long: `Build the Vietoris–Rips filtration of the points in the input file. Each
simplex is keyed by its largest pairwise distance. Without --radius the
enclosing radius of the point cloud is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("radius") {
				opts.radius = -1
			}
			return runRips(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().Float64VarP(&opts.radius, "radius", "r", 0, "ball radius (default: enclosing radius)")
	cmd.Flags().IntVarP(&opts.dim, "dim", "d", opts.dim, "maximum simplex dimension")
	cmd.Flags().StringVar(&opts.backend, "backend", opts.backend, "filtration backend: set or rank")

	return cmd
}

// runRips treats a negative radius as "use the enclosing radius".
func runRips(ctx context.Context, w io.Writer, path string, opts ripsOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	b, err := filtration.ParseBackend(opts.backend)
	if err != nil {
		return err
	}
	in, err := readInput(path)
	if err != nil {
		return err
	}
	pd, err := geometry.PairwiseDistances(in.Points)
	if err != nil {
		return err
	}
	radius := opts.radius
	if radius < 0 {
		if radius, err = geometry.EnclosingRadius(pd); err != nil {
			return err
		}
		logger.Debug("using enclosing radius", "radius", radius)
	}

	f, err := geometry.RipsFiltration(pd, radius, opts.dim, b, geometry.WithLogger(logger))
	if err != nil {
		return err
	}
	prog.done("built rips filtration")

	printTitle(w, f.String())
	for key, s := range f.All() {
		printLine(w, fmt.Sprintf("%-10.4g %v", key, s))
	}
	printSuccess(w, "radius %.4g, %d simplices", radius, f.Len())

	return nil
}
