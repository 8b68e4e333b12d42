package main

import (
	"os"

	"github.com/mahdiidarabi/asymcrypto/cmd/asymcrypto/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
