package main

import "github.com/mcoot/foxhound-go/internal/cli"

func main() {
	cli.Execute()
}
