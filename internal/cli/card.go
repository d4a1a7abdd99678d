// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splex/complex"
)

// cardOpts holds the flags of the card command.
type cardOpts struct {
	backend string // overrides the backend named in the input file
}

// cardCommand reports the dimension and shape of a complex.
func (c *CLI) cardCommand() *cobra.Command {
	var opts cardOpts

	cmd := &cobra.Command{
		Use:   "card [file]",
		Short: "Print the dimension and shape of a complex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCard(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.backend, "backend", "", "storage backend: set, tree or rank")

	return cmd
}

func runCard(ctx context.Context, w io.Writer, path string, opts cardOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := readInput(path)
	if err != nil {
		return err
	}
	cx, err := complexFrom(in, opts.backend)
	if err != nil {
		return err
	}
	prog.done("built complex")
	if err := complex.CheckClosure(cx); err != nil {
		return err
	}

	printTitle(w, complex.Describe(cx))
	printKeyValue(w, "dimension", fmt.Sprint(cx.Dim()))
	printKeyValue(w, "shape", formatInts(cx.Shape()))
	printKeyValue(w, "simplices", fmt.Sprint(cx.Len()))

	return nil
}
