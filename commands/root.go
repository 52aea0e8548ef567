package commands

import "github.com/spf13/cobra"

var (
	episodes int
	horizon  int
	savePath string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use: "tabrl",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 5000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&horizon, "horizon", 100, "Horizon of each episode")
	rootCommand.PersistentFlags().StringVarP(&savePath, "save", "s", "results", "Save the result data in the specified folder")
	// adding the subcommands here
	rootCommand.AddCommand(GridCommand())
	return rootCommand
}
