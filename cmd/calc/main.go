package main

import "github.com/blakeblackwell-persefoni/calcd/pkg/cli"

func main() {
	cli.Execute()
}
