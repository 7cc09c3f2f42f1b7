package main

import "github.com/docforge/docforge/internal/cli"

func main() {
	cli.Execute()
}
