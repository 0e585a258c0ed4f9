package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	defer logPanics()

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// logPanics mirrors Registry.Recover for the window where logging is
// not yet set up and the registry is still nil.
func logPanics() {
	if r := recover(); r != nil {
		if registry != nil {
			registry.LogPanic(r, debug.Stack())
		}
		panic(r)
	}
}
