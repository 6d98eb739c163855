package main

import "github.com/mcoot/tennisscore/internal/cli"

func main() {
	cli.Execute()
}
