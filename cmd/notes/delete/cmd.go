// Package deletecmd implements the `notes delete` command.
package deletecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-ports/notes/cmd/notes/shared"
)

// Command implements `notes delete`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the delete command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note by its exact ID",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	res, err := svc.Delete(args[0])
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	switch {
	case res.Removed == 0:
		fmt.Fprintf(cmd.OutOrStdout(), "No note found with id %s\n", args[0])
	case res.SaveErr != nil:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: could not save notes: %v\n", res.SaveErr)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", args[0])
	}
	return nil
}
