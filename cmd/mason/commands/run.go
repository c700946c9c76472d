package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [target] [key=value...]",
		Short: "Run a target task and its dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			configPath, _ := cmd.Flags().GetString("config")
			_, err := c.app.Run(cmd.Context(), args[0], app.RunOptions{
				ConfigPath: configPath,
				Arguments:  args[1:],
			})
			return err
		},
	}
}
