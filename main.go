package main

import (
	"fmt"

	"github.com/tabrl/tabrl/commands"
)

// main entry point to the training commands
func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
