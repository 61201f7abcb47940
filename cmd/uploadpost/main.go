package main

import (
	"os"

	"github.com/blacktop/uploadpost/cmd"
	"github.com/blacktop/uploadpost/internal/logutil"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logutil.Errorf("%v", err)
		os.Exit(1)
	}
}
