package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"scene-viewer/internal/commands"
	"scene-viewer/internal/env"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "viewer: .env:", err)
	}

	reg := commands.NewRegistry("run")
	registerRun(reg)
	registerValidate(reg)
	registerExport(reg)
	registerConfig(reg)

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "commands:")
			reg.Usage(os.Stderr)
			return
		}
		fmt.Fprintln(os.Stderr, "viewer:", err)
		os.Exit(1)
	}
}
