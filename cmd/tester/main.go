package main

import (
	"os"

	"github.com/b-harvest/evm-network-profiles/cmd/tester/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
