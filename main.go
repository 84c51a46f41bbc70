package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sashworth/tonepick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
