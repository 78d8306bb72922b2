package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andersonsilva/portfolio/internal/content"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a YAML content file",
		Args:  cobra.ExactArgs(1),
		// The file under test is the argument, not the configured content.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"%s: ok (%d skill groups, %d projects, %d experience entries, %d education entries)\n",
				args[0], len(c.Skills), len(c.Projects), len(c.Experience), len(c.Education))
			return err
		},
	}
}
