package main

import "lognorm/internal/cli"

func main() {
	cli.Execute()
}
