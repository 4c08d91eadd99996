package main

import "github.com/alvesdmateus/paasctl/internal/cli/commands"

func main() {
	commands.Execute()
}
