// Copyright (C) 2024 The simplejson Authors. All Rights Reserved.

// Program jsonlint checks that each named file contains a single valid JSON
// document, reporting the exact position of the first error otherwise.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/panjf2000/ants/v2"

	"github.com/guillheu/simplejson"
)

// CLI defines the command-line interface.
var CLI struct {
	Mode  string   `help:"Unicode profile to apply." default:"strict" enum:"strict,utf16"`
	Jobs  int      `help:"Number of files to check concurrently." short:"j" default:"4"`
	Quiet bool     `help:"Report only invalid files." short:"q"`
	Files []string `arg:"" help:"JSON files to check." type:"existingfile"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("jsonlint"),
		kong.Description("A strict JSON syntax checker"),
		kong.UsageOnError(),
	)

	p := simplejson.Parser{}
	if CLI.Mode == "utf16" {
		p.Mode = simplejson.ModeUTF16
	}

	pool, err := ants.NewPool(CLI.Jobs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonlint: %v\n", err)
		os.Exit(2)
	}
	defer pool.Release()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex // guards output and failed
		failed bool
	)
	for _, path := range CLI.Files {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			err := checkFile(p, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed = true
			} else if !CLI.Quiet {
				fmt.Printf("%s: ok\n", path)
			}
		})
		if err != nil {
			wg.Done()
			fmt.Fprintf(os.Stderr, "jsonlint: %v\n", err)
			os.Exit(2)
		}
	}
	wg.Wait()

	if failed {
		os.Exit(1)
	}
}

func checkFile(p simplejson.Parser, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = p.Parse(string(data))
	return err
}
