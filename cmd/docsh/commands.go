package main

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/docsh/internal/shell"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docsh %s\n", Version)
		},
	}
}

func newTreeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the document tree and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd, *configFile, false)
			if err != nil {
				return report(cmd, err)
			}
			defer env.close()
			fmt.Fprintln(cmd.OutOrStdout(), shell.RenderTree(env.tree.Root()))
			return nil
		},
	}
}

func newRunCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a single shell command and exit",
		Example: `  docsh run ls /using-amp
  docsh run find -name thread
  docsh run head -n 5 /introduction.md`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd, *configFile, false)
			if err != nil {
				return report(cmd, err)
			}
			defer env.close()

			res := newInterpreter(env).Execute(cmd.Context(), strings.Join(args, " "))
			if res.Output != "" {
				if res.Success {
					fmt.Fprintln(cmd.OutOrStdout(), res.Output)
				} else {
					fmt.Fprintln(cmd.ErrOrStderr(), res.Output)
				}
			}
			if !res.Success {
				return errCommandFailed
			}
			return nil
		},
	}
	// Flags after the shell verb, such as "-n 5", belong to the command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
