package main

import (
	"os"

	"github.com/walkinmyshoes/wims/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
