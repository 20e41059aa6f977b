// Package createcmd implements the `notes create` command.
package createcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/notes/cmd/notes/shared"
	"github.com/go-ports/notes/internal/service"
)

// Command implements `notes create`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	description string
}

// New creates the create command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "create <title> [--desc <description>]",
		Short: "Create a new note",
		Long: "Create a new note. Words after the command are joined into the title,\n" +
			"so quoting is optional: `notes create Buy milk`.",
		Args: requireTitle,
		RunE: c.run,
	}

	c.cmd.Flags().StringVarP(&c.description, "desc", "d", "", "Optional description of the note")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

// requireTitle rejects invocations without a non-blank title before any I/O.
func requireTitle(cmd *cobra.Command, args []string) error {
	if title(args) == "" {
		return fmt.Errorf("%w\nUsage: %s", service.ErrEmptyTitle, cmd.UseLine())
	}
	return nil
}

func title(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	res, err := svc.Create(title(args), c.description)
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	if res.SaveErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: could not save notes: %v\n", res.SaveErr)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created note: %s (id: %s)\n", res.Note.Title, res.Note.ID)
	return nil
}
