package main

import (
	"os"

	"restaurant-system/cmd/restaurant-system/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
