package main

import (
	"fmt"
	"os"

	"github.com/mino-editor/mino/internal/app"
	"github.com/mino-editor/mino/internal/logger"
)

func main() {
	args := os.Args[1:]
	debug := false
	if len(args) > 0 && args[0] == "--debug" {
		debug = true
		args = args[1:]
	}
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if err := logger.Init(debug); err != nil {
		fmt.Fprintln(os.Stderr, "mino:", err)
		os.Exit(1)
	}
	defer logger.Close()
	if err := app.New(args).Run(); err != nil {
		logger.Error("fatal", "err", err)
		logger.Close()
		fmt.Fprintln(os.Stderr, "mino:", err)
		os.Exit(1)
	}
}
