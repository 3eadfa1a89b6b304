// Command ua-statusgen generates the status code registry table.
//
// It reads a YAML registry of status code names and values and writes a Go
// file with one constant per code and the registryEntries function used by
// package statuscode.
//
// Usage:
//
//	ua-statusgen -registry statuscodes.yaml -output codes_gen.go [-package statuscode]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	registryPath := flag.String("registry", "", "Path to the status code registry YAML")
	outputPath := flag.String("output", "", "Output path for the generated Go file")
	pkgName := flag.String("package", "statuscode", "Package name of the generated file")
	flag.Parse()

	if *registryPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: ua-statusgen -registry <path> -output <path> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*registryPath, *outputPath, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(registryPath, outputPath, pkgName string) error {
	reg, err := LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("loading registry: %w", err)
	}
	if err := ValidateRegistry(reg); err != nil {
		return err
	}

	code, err := GenerateRegistry(reg, pkgName, filepath.Base(registryPath))
	if err != nil {
		return fmt.Errorf("generating registry: %w", err)
	}
	if err := writeFormatted(outputPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(outputPath), err)
	}
	fmt.Printf("  generated %s (%d codes)\n", outputPath, len(reg.Codes))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
