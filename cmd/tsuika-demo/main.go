package main

import (
	"context"
	"fmt"
	"os"

	"tsuika/internal/config"
	"tsuika/internal/demo"
	"tsuika/internal/ui"
)

func main() {
	if err := ui.Run(context.Background(), demo.Registry(), config.DefaultConfig(), nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
