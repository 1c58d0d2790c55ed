package main

import "edgarperiods/internal/cli"

func main() {
	cli.Execute()
}
