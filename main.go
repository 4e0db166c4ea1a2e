package main

import (
	"fmt"
	"os"

	"bscout/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("indexer run into an error: %s", err)
		os.Exit(1)
	}
}
