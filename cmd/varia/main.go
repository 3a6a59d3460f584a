// Varia - A colour variations generator
//
// Varia derives lighter, darker and shifted variations of up to three base
// colours and adds them to your palettes.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/varia/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
