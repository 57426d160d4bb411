package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"scene-viewer/internal/commands"
)

func registerExport(reg *commands.Registry) {
	var (
		opts options
		out  string
	)
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	opts.bind(fs)
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	reg.Register("export", "write a scene as YAML", fs, func() error {
		p, err := opts.prefs()
		if err != nil {
			return err
		}
		scn, err := loadScene(p.Scene)
		if err != nil {
			return err
		}
		var w io.Writer = os.Stdout
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			defer f.Close()
			w = f
		}
		return scn.Encode(w)
	})
}
