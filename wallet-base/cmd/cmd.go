package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/howeyc/gopass"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ReadSecret reads a line from the terminal without echoing it.
var ReadSecret = gopass.GetPasswdMasked

type Command struct {
	cmd *cobra.Command
}

// New creates a command. run may be nil for a command that only groups
// subcommands.
func New(use, short, example string, run func(c *Command, args []string) error) *Command {
	c := &Command{
		cmd: &cobra.Command{
			Use:           use,
			Short:         short,
			Example:       example,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	if run != nil {
		c.cmd.RunE = func(_ *cobra.Command, args []string) error {
			return run(c, args)
		}
	}
	return c
}

func (c *Command) CobraCmd() *cobra.Command {
	return c.cmd
}

// Flags returns the flags of this command only.
func (c *Command) Flags() *pflag.FlagSet {
	return c.cmd.Flags()
}

// PersistentFlags returns the flags shared with subcommands.
func (c *Command) PersistentFlags() *pflag.FlagSet {
	return c.cmd.PersistentFlags()
}

func (c *Command) AddCommand(subs ...*Command) {
	for _, sub := range subs {
		c.cmd.AddCommand(sub.cmd)
	}
}

// Args sets the positional argument validator, e.g. cobra.ExactArgs(1).
func (c *Command) Args(args cobra.PositionalArgs) *Command {
	c.cmd.Args = args
	return c
}

// PreRun registers a hook run before this command and its subcommands.
func (c *Command) PreRun(f func(c *Command) error) {
	c.cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return f(c)
	}
}

// Out returns the writer commands print their results to.
func (c *Command) Out() io.Writer {
	return c.cmd.OutOrStdout()
}

func (c *Command) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.Out(), format, a...)
}

func (c *Command) SetOut(w io.Writer) {
	c.cmd.SetOut(w)
}

func (c *Command) SetArgs(args []string) {
	c.cmd.SetArgs(args)
}

// Secret fills flagName from a masked prompt when it was left empty.
func (c *Command) Secret(flagName string) error {
	return c.SecretWithConfirm(flagName, false)
}

// SecretWithConfirm is Secret, optionally asking twice.
func (c *Command) SecretWithConfirm(flagName string, with bool) error {
	secret, err := c.Flags().GetString(flagName)
	if err != nil {
		return err
	}

	if len(secret) > 0 {
		return nil
	}

	fmt.Fprintf(c.cmd.ErrOrStderr(), "%s:", flagName)
	ps, err := ReadSecret()
	if err != nil {
		return errors.Wrapf(err, "read %s failed", flagName)
	}

	if with {
		fmt.Fprintf(c.cmd.ErrOrStderr(), "confirm %s:", flagName)
		ps1, err := ReadSecret()
		if err != nil {
			return errors.Wrapf(err, "read %s failed", flagName)
		}

		if !bytes.Equal(ps1, ps) {
			return fmt.Errorf("%s not equal", flagName)
		}
	}

	return c.Flags().Set(flagName, string(ps))
}

func (c *Command) Execute() error {
	return c.cmd.Execute()
}
