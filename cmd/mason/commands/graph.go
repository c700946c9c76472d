package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/mason/internal/app"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph [target]",
		Short: "Print the execution plan for a target without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			graph, err := c.app.Plan(args[0], app.RunOptions{ConfigPath: configPath})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for task := range graph.Walk() {
				if len(task.Dependencies) == 0 {
					fmt.Fprintln(out, task.Name)
					continue
				}
				fmt.Fprintf(out, "%s <- %s\n", task.Name, strings.Join(task.Dependencies, ", "))
			}
			fmt.Fprintf(out, "plan %016x (%d tasks)\n", graph.Fingerprint(), graph.TaskCount())
			return nil
		},
	}
}
