// Package rootcmd wires the root cobra.Command for the notes CLI binary.
package rootcmd

import (
	"github.com/spf13/cobra"

	createcmd "github.com/go-ports/notes/cmd/notes/create"
	deletecmd "github.com/go-ports/notes/cmd/notes/delete"
	listcmd "github.com/go-ports/notes/cmd/notes/list"
	"github.com/go-ports/notes/cmd/notes/shared"
	"github.com/go-ports/notes/internal/buildinfo"
)

// New creates and returns the root cobra.Command for the notes CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Create, list, and delete short local notes",
		Long:          "notes keeps short text notes in ~/.notes/notes.json.",
		Version:       buildinfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		// Unknown commands fall through to the help text instead of failing.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			ctx.ConfigureLogging(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging on stderr")

	root.AddCommand(
		createcmd.New(ctx).Cmd(),
		listcmd.New(ctx).Cmd(),
		deletecmd.New(ctx).Cmd(),
	)

	return root
}
