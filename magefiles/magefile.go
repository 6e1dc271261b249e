//go:build mage

// Package main contains Mage build targets for tt-upgrade developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
)

const (
	binDir    = "bin"
	binName   = "tt-upgrade"
	cmdPkg    = "./cmd/tt-upgrade"
	sampleDir = "sample"
	fixtures  = "internal/upgrade/testdata"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the Go test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Sample migrates every version 4 fixture into sample/ with the built binary.
func Sample() error {
	mg.Deps(Build)

	inputs, err := filepath.Glob(filepath.Join(fixtures, "*.v4.yaml"))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	bin := filepath.Join(binDir, binName)
	for _, in := range inputs {
		base := strings.TrimSuffix(filepath.Base(in), ".v4.yaml")
		out := filepath.Join(sampleDir, base+".yaml")
		doc := filepath.Join(sampleDir, base+".md")
		cmd := exec.Command(bin, "migrate", "--color", "never", "--out", out, "--docs", doc, in)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("migrating %s: %w", in, err)
		}
		fmt.Println("  ", out, doc)
	}
	fmt.Printf("Migrated %d fixture(s).\n", len(inputs))
	return nil
}

// Clean removes build and sample output.
func Clean() error {
	for _, dir := range []string{binDir, sampleDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	return nil
}

// Stats prints project metrics: Go production/test LOC and Markdown word count.
func Stats() error {
	var prodLines, testLines, docWords int
	err := walkSources(".", func(path string, data []byte) {
		switch {
		case strings.HasSuffix(path, "_test.go"):
			testLines += countLines(data)
		case filepath.Ext(path) == ".go":
			prodLines += countLines(data)
		case filepath.Ext(path) == ".md":
			docWords += len(strings.Fields(string(data)))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// walkSources calls visit with the content of every file under root,
// skipping hidden directories, underscore-prefixed directories and build output.
func walkSources(root string, visit func(path string, data []byte)) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir || name == sampleDir) {
				return filepath.SkipDir
			}
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		visit(path, data)
		return nil
	})
}

// countLines counts non-blank lines in data.
func countLines(data []byte) int {
	n := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
