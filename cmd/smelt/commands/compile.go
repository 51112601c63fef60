package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/smelt/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a source file through the namespace cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			name, _ := cmd.Flags().GetString("name")
			inspect, _ := cmd.Flags().GetBool("inspect")

			return c.app.CompileFile(args[0], app.CompileOptions{
				Name:    name,
				Inspect: inspect,
			})
		},
	}
	cmd.Flags().StringP("name", "n", "", "Target namespace name (defaults to the configured name)")
	cmd.Flags().BoolP("inspect", "i", false, "Dump the output cache and engine state after compiling")
	return cmd
}
