package main

import (
	"fmt"
	"os"

	"github.com/gammaphi/lamden-deploy/internal/cli"
)

func main() {
	rootCmd := cli.NewDeployContractCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
