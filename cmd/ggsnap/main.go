// Command ggsnap inspects and compares snapshot reference images.
//
// Usage:
//
//	ggsnap compare [-tolerance 0.05] [-threshold 0] [-diff diff.png] reference.png actual.png
//	ggsnap diffdir [-tolerance 0.05] [-j 8] reference-dir actual-dir
//	ggsnap resolve [-width 375] [-base dir] key
//	ggsnap matrix params.yaml
//	ggsnap pixel image.png x y
//	ggsnap demo [-width 200] [-height 80] [-output demo.png]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

var errMismatch = errors.New("images differ")

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	args := os.Args[2:]
	switch os.Args[1] {
	case "compare":
		err = runCompare(args, os.Stdout)
	case "diffdir":
		err = runDiffDir(args, os.Stdout)
	case "resolve":
		err = runResolve(args, os.Stdout)
	case "matrix":
		err = runMatrix(args, os.Stdout)
	case "pixel":
		err = runPixel(args, os.Stdout)
	case "demo":
		err = runDemo(args, os.Stdout)
	case "help", "-h", "--help":
		usage(os.Stdout)
		return
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if errors.Is(err, errMismatch) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("ggsnap %s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: ggsnap <command> [flags] [args]

commands:
  compare   compare two images with a pixel tolerance
  diffdir   compare every reference in a directory with its counterpart
  resolve   print the reference suffix order and the directory holding a key
  matrix    print the parameter combinations of a YAML file
  pixel     print the color of one pixel of an image
  demo      render a sample snapshot container`)
}
