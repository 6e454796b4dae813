package main

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggsnap/snapshot"
)

// runMatrix prints the combinations of a YAML file shaped like
//
//	title:
//	  small: Suspendisse aliquet.
//	  large: Mauris risus lacus, placerat quis tristique a.
//	location:
//	  small: Location.
func runMatrix(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("matrix", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("want one parameter file, got %d args", flags.NArg())
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	var params map[string]map[string]any
	if err := yaml.Unmarshal(data, &params); err != nil {
		return fmt.Errorf("parse %s: %w", flags.Arg(0), err)
	}

	snapshot.Vary(params, func(id string, values map[string]any) {
		fmt.Fprint(w, id)
		for _, name := range slices.Sorted(maps.Keys(values)) {
			fmt.Fprintf(w, "\t%s=%v", name, values[name])
		}
		fmt.Fprintln(w)
	})
	return nil
}
