package main

import (
	"os"

	"github.com/ritvikindupuri/QuantamTrade/cmd/quantamtrade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
