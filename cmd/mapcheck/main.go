// Package main provides the CLI entrypoint for mapcheck.
//
// mapcheck lints YAML mapping profiles: it parses each profile and runs the
// type-free structural checks (missing keys, duplicate mappings, malformed
// property rules). Type-aware validation happens in-process where the
// registry binds real type references; the CLI covers what can be caught
// from the profile alone.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"mapcheck/mapper"
)

func main() {
	verbose := flag.Bool("v", false, "dump parsed profiles")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: mapcheck [-v] profile.yaml [profile.yaml ...]")
		os.Exit(2)
	}

	failed := false

	for _, path := range flag.Args() {
		profile, err := mapper.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mapcheck: %v\n", err)

			failed = true

			continue
		}

		if *verbose {
			spew.Dump(profile)
		}

		res := profile.Lint()

		for _, w := range res.Warnings {
			fmt.Printf("%s: warning: %s\n", path, w.String())
		}

		for _, e := range res.Errors {
			fmt.Printf("%s: error: %s\n", path, e.String())
		}

		if res.HasErrors() {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
