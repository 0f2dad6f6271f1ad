// Command inspect is an interactive playground for the arena bridge.
//
// It drives a live State from typed commands (create arenas, allocate
// records, wrap and unref them, fuse arenas) and shows the identity cache,
// arena accounting, and the cache event stream as they change.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	bridge "github.com/wippyai/arena-bridge"
)

func main() {
	debug := flag.Bool("debug", false, "Log bridge activity to inspect.log")
	flag.Parse()

	if *debug {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"inspect.log"}
		logger, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		bridge.SetLogger(logger)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "inspect: requires a terminal")
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
