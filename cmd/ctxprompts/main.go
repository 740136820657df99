package main

import "github.com/sp80808/contextual-prompts/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
