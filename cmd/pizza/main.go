package main

import (
	"log/slog"
	"os"

	"github.com/Wshid/effective-java/pkg/log"
)

const (
	Name    = "pizza"
	Version = "1.0.0"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Failed to build pizza", log.Error(err))
		os.Exit(1)
	}
}
