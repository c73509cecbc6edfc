package main

import "github.com/jappenzeller/colonybot/internal/adapters/cli"

func main() {
	cli.Execute()
}
