package cli

import (
	"fmt"

	"lookml-builder/internal/mapping"
)

func (a *App) runInitConfig(args []string) error {
	var (
		output string
		force  bool
	)

	fs := a.newFlagSet("init-config")
	fs.StringVarP(&output, "output", "o", mapping.DefaultConfigFile, "output file name")
	fs.BoolVar(&force, "force", false, "overwrite an existing file")

	if err := a.parse(fs, args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return usagef("init-config: unexpected arguments %v", fs.Args())
	}

	if err := mapping.WriteSample(output, force); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Created sample configuration: %s\n", output)
	fmt.Fprintln(a.stdout, "Edit this file to customize field classifications and formatting rules.")

	return nil
}
