// Package listcmd implements the `notes list` command.
package listcmd

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-ports/notes/cmd/notes/shared"
	"github.com/go-ports/notes/internal/render"
)

// Command implements `notes list`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	format string
}

// New creates the list command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "list",
		Short: "List notes, most recent first",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}

	c.cmd.Flags().StringVarP(&c.format, "format", "f", render.FormatText,
		"Output format: "+strings.Join(render.Formats, ", "))

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	if !slices.Contains(render.Formats, c.format) {
		return fmt.Errorf("unknown format %q (want one of %s)", c.format, strings.Join(render.Formats, ", "))
	}

	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	res, err := svc.List()
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	out := cmd.OutOrStdout()
	if len(res.Notes) == 0 && c.format == render.FormatText {
		fmt.Fprintln(out, "No notes found.")
		return nil
	}
	return render.Write(out, c.format, res.Notes, time.Now())
}
