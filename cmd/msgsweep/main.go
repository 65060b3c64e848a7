package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/msgsweep/internal/cli"
	"github.com/ppiankov/msgsweep/internal/pipeline"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Unused messages are the tool's designed failure outcome; the
		// report has already been printed, only the status matters.
		if !errors.Is(err, pipeline.ErrUnusedMessages) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
