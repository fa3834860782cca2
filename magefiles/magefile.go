//go:build mage

// Package main contains Mage build targets for nnb-converter developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "nnb-converter"
	cmdPkg  = "./cmd/nnb-converter"

	// sampleNotebook is converted by the Sample target.
	sampleNotebook = "internal/notebook/testdata/sample.nnb"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample converts the bundled sample notebook to both formats under bin/sample/.
func Sample() error {
	mg.Deps(Build)

	outDir := filepath.Join(binDir, "sample")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	data, err := os.ReadFile(sampleNotebook)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sampleNotebook, err)
	}
	nb := filepath.Join(outDir, filepath.Base(sampleNotebook))
	if err := os.WriteFile(nb, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", nb, err)
	}

	bin := filepath.Join(binDir, binName)
	for _, target := range []string{"md", "js"} {
		if err := sh.RunV(bin, "convert", "-f", nb, "-o", target); err != nil {
			return fmt.Errorf("converting to %s: %w", target, err)
		}
	}
	return nil
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints Go production and test line counts.
func Stats() error {
	prodLines, testLines, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the tree and counts non-blank lines in Go files,
// split into production and _test.go files. Directories starting with "_"
// or "." are skipped, as the go tool does.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
