// Package main is the single-binary entrypoint for fightclub.
package main

import "github.com/fightclub-net/fightclub/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
