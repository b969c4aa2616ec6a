package main

import (
	"flag"
	"fmt"
	"os"
)

const (
	directory = "directory"
)

func main() {
	mode := flag.String("mode", "", "Mode to run: write or read")

	flag.Parse()

	switch *mode {
	case "write":
		_write()
	case "read":
		_read()
	default:
		fmt.Println("Usage: go run . -mode=write|read")
		os.Exit(1)
	}
}
