package main

import "github.com/ozank/plank/internal/cli"

func main() {
	cli.Execute()
}
