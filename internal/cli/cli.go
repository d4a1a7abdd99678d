// SPDX-License-Identifier: MIT

// Package cli implements the splex command-line interface.
//
// Commands read complexes and point clouds from TOML files:
//
//	backend   = "tree"            # set | tree | rank
//	simplices = [[0, 1, 2], [2, 3]]
//	points    = [[0.0, 0.0], [1.0, 0.0], [0.0, 1.0]]
//
// # Commands
//
//   - card:     dimension, shape and size of a complex
//   - boundary: the signed boundary matrix in dimension p
//   - traverse: a simplex-tree traversal in any of its orders
//   - rips:     the Rips filtration of a point cloud
//   - render:   the 1-skeleton as Graphviz DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "splex"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "splex builds and queries simplicial complexes",
		Long:         `splex reads simplicial complexes and point clouds from TOML files and reports their shape, boundary matrices, traversals and Rips filtrations.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.AddCommand(c.cardCommand())
	root.AddCommand(c.boundaryCommand())
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.ripsCommand())
	root.AddCommand(c.renderCommand())

	return root
}
