package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("starting")

	defer func() {
		os.Exit(0)
	}()

	if len(os.Args) > 3 {
		os.Exit(2) // want "direct call to os.Exit in main.main is forbidden"
	}

	exit(1)
}

func exit(code int) {
	os.Exit(code)
}
