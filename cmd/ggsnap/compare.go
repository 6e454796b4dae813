package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ggsnap/snapshot"
)

func runCompare(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("compare", flag.ContinueOnError)
	tolerance := flags.Float64("tolerance", snapshot.DefaultTolerance, "fraction of pixels allowed to differ")
	threshold := flags.Uint("threshold", 0, "per-channel difference still counted as equal (0-255)")
	diffOut := flags.String("diff", "", "write a diff image to this file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("want reference and actual image, got %d args", flags.NArg())
	}

	cmp := snapshot.PixelComparator{Threshold: uint8(min(*threshold, 255))}
	d, err := compareFiles(cmp, flags.Arg(0), flags.Arg(1), *tolerance)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, d)

	if *diffOut != "" && d.Image != nil {
		if err := imaging.Save(d.Image, *diffOut); err != nil {
			return err
		}
	}
	if !d.Match {
		return errMismatch
	}
	return nil
}

func compareFiles(cmp snapshot.Comparator, refPath, actPath string, tolerance float64) (snapshot.Diff, error) {
	ref, err := imaging.Open(refPath)
	if err != nil {
		return snapshot.Diff{}, err
	}
	act, err := imaging.Open(actPath)
	if err != nil {
		return snapshot.Diff{}, err
	}
	return cmp.Compare(ref, act, tolerance)
}

func runDiffDir(args []string, w io.Writer) error {
	flags := flag.NewFlagSet("diffdir", flag.ContinueOnError)
	tolerance := flags.Float64("tolerance", snapshot.DefaultTolerance, "fraction of pixels allowed to differ")
	jobs := flags.Int("j", 8, "concurrent comparisons")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("want reference and actual directory, got %d args", flags.NArg())
	}
	refDir, actDir := flags.Arg(0), flags.Arg(1)

	var rels []string
	err := filepath.WalkDir(refDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}
		rel, err := filepath.Rel(refDir, path)
		if err != nil {
			return err
		}
		rels = append(rels, rel)
		return nil
	})
	if err != nil {
		return err
	}

	var (
		mu       sync.Mutex
		failures []string
	)
	cmp := snapshot.PixelComparator{}
	g := new(errgroup.Group)
	g.SetLimit(max(*jobs, 1))
	for _, rel := range rels {
		g.Go(func() error {
			d, err := compareFiles(cmp, filepath.Join(refDir, rel), filepath.Join(actDir, rel), *tolerance)
			if err != nil {
				return fmt.Errorf("%s: %w", rel, err)
			}
			if !d.Match {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %s", rel, d))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Strings(failures)
	for _, f := range failures {
		fmt.Fprintln(w, f)
	}
	fmt.Fprintf(w, "%d compared, %d differ\n", len(rels), len(failures))
	if len(failures) > 0 {
		return errMismatch
	}
	return nil
}
