package cli

import (
	"fmt"
	"os"

	"lookml-builder/internal/lkml"
	"lookml-builder/internal/plan"
)

func (a *App) runOntology(args []string) error {
	var output string

	fs := a.newFlagSet("ontology")
	fs.StringVarP(&output, "output", "o", "", "write the skeleton to a file instead of stdout")

	if err := a.parse(fs, args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return usagef("ontology: expected <view_file>")
	}

	doc, err := lkml.ParseFile(fs.Arg(0))
	if err != nil {
		return err
	}

	data, err := plan.ExportOntologyYAML(doc)
	if err != nil {
		return fmt.Errorf("encoding ontology: %w", err)
	}

	if output == "" {
		_, err = a.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing ontology: %w", err)
	}

	fmt.Fprintf(a.stdout, "Wrote ontology skeleton: %s\n", output)

	return nil
}
