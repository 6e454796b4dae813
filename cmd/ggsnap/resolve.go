package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/ggsnap/snapshot"
)

func runResolve(args []string, w io.Writer) error {
	cfg, err := snapshot.LoadConfig()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("resolve", flag.ContinueOnError)
	width := flags.Float64("width", cfg.Device.ShortEdge(), "device short edge in points")
	base := flags.String("base", cfg.ReferenceDir, "reference base directory")
	if err := flags.Parse(args); err != nil {
		return err
	}

	suffixes := snapshot.OrderSuffixes(cfg.Suffixes, *width)
	fmt.Fprintf(w, "class:    %s\n", snapshot.BucketSuffix(*width))
	fmt.Fprintf(w, "suffixes: %s\n", strings.Join(suffixes, " "))
	if flags.NArg() == 0 {
		return nil
	}
	if *base == "" {
		return snapshot.ErrNoReferenceDir
	}

	store := snapshot.FileStore{}
	for _, key := range flags.Args() {
		dir, ok := snapshot.ResolveDirectory(store, *base, suffixes, key)
		if !ok {
			fmt.Fprintf(w, "%s: not found\n", key)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", key, store.Path(dir, key))
	}
	return nil
}
