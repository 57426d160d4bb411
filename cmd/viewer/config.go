package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"scene-viewer/internal/commands"
	"scene-viewer/internal/config"
)

func registerConfig(reg *commands.Registry) {
	var (
		opts  options
		write bool
		force bool
	)
	fset := flag.NewFlagSet("config", flag.ContinueOnError)
	opts.bind(fset)
	fset.BoolVar(&write, "init", false, "write the default config to the -config path")
	fset.BoolVar(&force, "force", false, "with -init, overwrite an existing file")
	reg.Register("config", "print the effective settings, or write a default config file with -init", fset, func() error {
		if write {
			if err := initConfig(opts.configPath, force); err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, "wrote", opts.configPath)
			return nil
		}
		p, err := opts.prefs()
		if err != nil {
			return err
		}
		return printPrefs(os.Stdout, p)
	})
}

// initConfig writes config.Default() to path. An existing file is kept unless force is set.
func initConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config: %s already exists (use -force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

func printPrefs(w io.Writer, p config.Prefs) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(p)
}
