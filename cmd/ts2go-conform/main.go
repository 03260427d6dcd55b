// Command ts2go-conform runs the transpiler-runtime conformance fixtures:
// it fetches pinned suite sets, verifies their checksums and executes them
// against this runtime.
package main

import (
	"flag"
	"fmt"
	"os"

	"ts2go/runtime-go/pkg/conformance"
)

const toolName = "ts2go-conform"

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %[1]s <command> [arguments]

Commands:
  run <dir>                 load and execute every suite in dir
  pin <dir>                 write a checksum manifest for the suites in dir
  verify <dir>              check the suites in dir against the manifest
  fetch <url> <dir>         clone a suite repository into dir
      -rev <ref>            pin to a tag, branch or commit
`, toolName)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "run":
		err = runCommand(os.Args[2:])
	case "pin":
		err = pinCommand(os.Args[2:])
	case "verify":
		err = verifyCommand(os.Args[2:])
	case "fetch":
		err = fetchCommand(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", toolName, os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", toolName, err)
		os.Exit(1)
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	verbose := fs.Bool("v", false, "print every case, not just failures")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("run: expected exactly one suite directory")
	}
	dir := fs.Arg(0)
	report, err := conformance.RunDir(dir)
	if err != nil {
		return err
	}
	for _, result := range report.Results {
		if result.Passed && !*verbose {
			continue
		}
		status := "PASS"
		if !result.Passed {
			status = "FAIL"
		}
		fmt.Printf("%s  %s/%s", status, result.Suite, result.Case)
		if result.Detail != "" {
			fmt.Printf("  %s", result.Detail)
		}
		fmt.Println()
	}
	fmt.Printf("run %s: %d passed, %d failed\n", report.RunID, report.Passed, report.Failed)
	if report.Failed > 0 {
		return fmt.Errorf("%d case(s) failed", report.Failed)
	}
	return nil
}

func pinCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("pin: expected exactly one suite directory")
	}
	dir := args[0]
	manifest, err := conformance.BuildManifest(dir, toolName, "", "")
	if err != nil {
		return err
	}
	if err := manifest.Save(dir); err != nil {
		return err
	}
	fmt.Printf("pinned %d suite(s) in %s\n", len(manifest.Suites), dir)
	return nil
}

func verifyCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("verify: expected exactly one suite directory")
	}
	dir := args[0]
	manifest, err := conformance.LoadManifest(dir)
	if err != nil {
		return err
	}
	if err := manifest.Verify(dir); err != nil {
		return err
	}
	fmt.Printf("verified %d suite(s) in %s\n", len(manifest.Suites), dir)
	return nil
}
