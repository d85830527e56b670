package main

import "github.com/example/pydocstub/internal/cli"

func main() {
	cli.Execute()
}
