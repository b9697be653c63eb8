package main

import (
	"log"

	"github.com/blakeblackwell-persefoni/calcd/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
